package main

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/blogview-app/blogview/internal/blogapi"
	"github.com/blogview-app/blogview/internal/common"
	"github.com/blogview-app/blogview/internal/markdown"
)

var sortFields = map[string]bool{
	"newest": true,
	"likes":  true,
	"views":  true,
}

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	var (
		params = r.URL.Query()
		tag    = params.Get("tag")
		query  = params.Get("q")
		sort   = params.Get("sort")
	)

	var (
		posts []blogapi.Post
		err   error
	)

	// Search and sort pass through uncached; the plain and tag-filtered
	// listings are served from the response cache.
	switch {
	case query != "":
		posts, err = app.client.SearchPosts(r.Context(), query)
	case sort != "":
		if !sortFields[sort] {
			app.writeErrorResponse(w, r, http.StatusBadRequest, "unknown sort field")
			return
		}
		posts, err = app.client.SortPosts(r.Context(), sort)
	default:
		posts, err = app.client.ListPosts(r.Context(), tag)
	}
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	popular, err := app.client.PopularTags(r.Context())
	if err != nil {
		// The sidebar is decoration, the page still works without it.
		app.logger.Warn("failed to load popular tags", slog.String("error", err.Error()))
	}

	err = app.render(w, http.StatusOK, "home.html", homePage{
		Tag:         tag,
		Query:       query,
		Sort:        sort,
		Posts:       posts,
		PopularTags: popular,
	})
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// renderedPost is what the page cache stores per post revision.
type renderedPost struct {
	content  template.HTML
	headings []markdown.Heading
}

func (app *application) postHandler(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	post, err := app.client.GetPost(r.Context(), id)
	if err != nil {
		var validationErr common.ValidationError
		if errors.As(err, &validationErr) {
			app.notFoundErrorResponse(w, r)
			return
		}
		app.upstreamErrorResponse(w, r, err)
		return
	}

	// Best-effort telemetry. A failed count is logged, never shown.
	if err := app.client.IncrementView(r.Context(), id); err != nil {
		app.logger.Warn("failed to increment view count", slog.String("id", id), slog.String("error", err.Error()))
	}

	rendered := app.renderPostContent(post)

	err = app.render(w, http.StatusOK, "post.html", postPage{
		Post:     post,
		Content:  rendered.content,
		Headings: rendered.headings,
	})
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// renderPostContent converts the post's markdown to HTML, memoized per
// post revision so repeat views skip the parse.
func (app *application) renderPostContent(post *blogapi.Post) renderedPost {
	key := common.PageKeyPost(post.ID, post.UpdatedAt)

	if v, ok := app.pages.Get(key); ok {
		if cached, ok := v.(renderedPost); ok {
			return cached
		}
	}

	doc := markdown.Parse(post.Content)
	rendered := renderedPost{
		content:  template.HTML(markdown.RenderHTML(doc)),
		headings: doc.Headings,
	}

	app.pages.Set(key, rendered)
	return rendered
}

func (app *application) tagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := app.client.AllTags(r.Context())
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	popular, err := app.client.PopularTags(r.Context())
	if err != nil {
		app.logger.Warn("failed to load popular tags", slog.String("error", err.Error()))
	}

	err = app.render(w, http.StatusOK, "tags.html", tagsPage{Tags: tags, PopularTags: popular})
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

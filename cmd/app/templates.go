package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/blogview-app/blogview/internal/blogapi"
	"github.com/blogview-app/blogview/internal/markdown"
)

//go:embed templates
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
}

var templates = template.Must(
	template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))

type errorPage struct {
	Status  int
	Message string
}

type homePage struct {
	Tag         string
	Query       string
	Sort        string
	Posts       []blogapi.Post
	PopularTags []blogapi.TagCount
}

type postPage struct {
	Post     *blogapi.Post
	Content  template.HTML
	Headings []markdown.Heading
}

type tagsPage struct {
	Tags        []string
	PopularTags []blogapi.TagCount
}

// render writes one page. The template executes into a buffer first so a
// half-written body never reaches the client on error.
func (app *application) render(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer

	err := templates.ExecuteTemplate(&buf, page, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

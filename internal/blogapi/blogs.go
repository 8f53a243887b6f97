package blogapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/blogview-app/blogview/internal/common"
)

// ListPosts returns all posts, or the posts carrying tag when it is
// non-empty. Results are served from cache within the TTL window.
func (c *Client) ListPosts(ctx context.Context, tag string) ([]Post, error) {
	key := KeyBlogs(tag)
	if v, ok := c.cache.Get(key); ok {
		if posts, ok := v.([]Post); ok {
			return posts, nil
		}
	}

	var query url.Values
	if tag != "" {
		query = url.Values{"tag": {tag}}
	}

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "blogs", query, nil, false, &posts); err != nil {
		return nil, err
	}

	c.cache.Set(key, posts)
	return posts, nil
}

// GetPost fetches one post by id, cache-aside.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	key := KeyBlog(id)
	if cached, ok := c.cache.Get(key); ok {
		if post, ok := cached.(*Post); ok {
			return post, nil
		}
	}

	var post Post
	if err := c.do(ctx, http.MethodGet, "blogs/"+url.PathEscape(id), nil, nil, false, &post); err != nil {
		return nil, err
	}

	c.cache.Set(key, &post)
	return &post, nil
}

// SearchPosts runs a server-side search. Results are query-specific and
// never cached.
func (c *Client) SearchPosts(ctx context.Context, q string) ([]Post, error) {
	var posts []Post
	err := c.do(ctx, http.MethodGet, "blogs/search", url.Values{"q": {q}}, nil, false, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// SortPosts asks the server for posts ordered by field. Not cached.
func (c *Client) SortPosts(ctx context.Context, field string) ([]Post, error) {
	var posts []Post
	err := c.do(ctx, http.MethodGet, "blogs/sort", url.Values{"by": {field}}, nil, false, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsByTag lists posts with an exact tag match, sharing the listing
// cache namespace with ListPosts.
func (c *Client) PostsByTag(ctx context.Context, tag string) ([]Post, error) {
	v := common.NewValidator()
	v.Check(common.NotBlank(tag), "tag", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	key := KeyBlogs(tag)
	if cached, ok := c.cache.Get(key); ok {
		if posts, ok := cached.([]Post); ok {
			return posts, nil
		}
	}

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "blogs/tag/"+url.PathEscape(tag), nil, nil, false, &posts); err != nil {
		return nil, err
	}

	c.cache.Set(key, posts)
	return posts, nil
}

// AllTags lists every tag in use.
func (c *Client) AllTags(ctx context.Context) ([]string, error) {
	var tags TagList
	if err := c.do(ctx, http.MethodGet, "blogs/tags/all", nil, nil, false, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// PopularTags lists tags with usage counts, most used first.
func (c *Client) PopularTags(ctx context.Context) ([]TagCount, error) {
	var tags []TagCount
	if err := c.do(ctx, http.MethodGet, "blogs/tags/popular", nil, nil, false, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// LikePost increments the like counter and returns the new total. The
// cached detail entry is dropped so the counter shows up on the next read.
func (c *Client) LikePost(ctx context.Context, id string) (int, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return 0, v.ValidationError()
	}

	var result struct {
		Likes int `json:"likes"`
	}
	err := c.do(ctx, http.MethodPost, "blogs/"+url.PathEscape(id)+"/like", nil, nil, false, &result)
	if err != nil {
		return 0, err
	}

	c.cache.Delete(KeyBlog(id))
	return result.Likes, nil
}

// AddComment appends a comment to a post and drops the cached detail
// entry.
func (c *Client) AddComment(ctx context.Context, id, username, text string) error {
	v := common.NewValidator()
	validateID(v, id)
	validateComment(v, username, text)
	if !v.Valid() {
		return v.ValidationError()
	}

	body := map[string]string{"username": username, "text": text}
	err := c.do(ctx, http.MethodPost, "blogs/"+url.PathEscape(id)+"/comment", nil, body, false, nil)
	if err != nil {
		return err
	}

	c.cache.Delete(KeyBlog(id))
	return nil
}

// IncrementView bumps the view counter. Pure telemetry: no cache entry is
// touched and callers are expected to ignore failures.
func (c *Client) IncrementView(ctx context.Context, id string) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return c.do(ctx, http.MethodPost, "blogs/"+url.PathEscape(id)+"/view", nil, nil, false, nil)
}

package blogapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/blogview-app/blogview/internal/common"
)

// Register creates an admin account.
func (c *Client) Register(ctx context.Context, creds Credentials) error {
	v := common.NewValidator()
	validateCredentials(v, creds)
	if !v.Valid() {
		return v.ValidationError()
	}

	return c.do(ctx, http.MethodPost, "admin/register", nil, creds, false, nil)
}

// Login authenticates and stores the returned bearer token on the client
// for subsequent authenticated calls. The token is also returned so the
// caller can persist it.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	v := common.NewValidator()
	validateCredentials(v, creds)
	if !v.Valid() {
		return "", v.ValidationError()
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "admin/login", nil, creds, false, &result); err != nil {
		return "", err
	}

	c.token = result.Token
	return result.Token, nil
}

// CreatePost publishes a new post. The listing caches are invalidated so
// the post appears on the next read.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var post Post
	if err := c.do(ctx, http.MethodPost, "blogs", nil, req, true, &post); err != nil {
		return nil, err
	}

	c.cache.DeletePrefix(prefixBlogs)
	return &post, nil
}

// UpdatePost replaces a post's content. Both the post's own cache entry
// and every listing are invalidated before returning.
func (c *Client) UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateID(v, id)
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	var post Post
	if err := c.do(ctx, http.MethodPut, "blogs/"+url.PathEscape(id), nil, req, true, &post); err != nil {
		return nil, err
	}

	c.cache.Delete(KeyBlog(id))
	c.cache.DeletePrefix(prefixBlogs)
	return &post, nil
}

// DeletePost removes a post, with the same invalidation as UpdatePost.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	err := c.do(ctx, http.MethodDelete, "blogs/"+url.PathEscape(id), nil, nil, true, nil)
	if err != nil {
		return err
	}

	c.cache.Delete(KeyBlog(id))
	c.cache.DeletePrefix(prefixBlogs)
	return nil
}

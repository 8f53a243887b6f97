package blogapi

import (
	"context"
	"io"
	"net/url"

	"github.com/blogview-app/blogview/internal/common"
)

// UploadImage uploads an image and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	v := common.NewValidator()
	v.Check(common.NotBlank(filename), "filename", "must be provided")
	if !v.Valid() {
		return "", v.ValidationError()
	}

	var result struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.doMultipart(ctx, "blogs/upload", filename, file, &result); err != nil {
		return "", err
	}

	return result.ImageURL, nil
}

// AttachImage uploads an image directly onto a post and returns its URL.
// The cached detail entry is dropped so the image shows on the next read.
func (c *Client) AttachImage(ctx context.Context, id, filename string, file io.Reader) (string, error) {
	v := common.NewValidator()
	validateID(v, id)
	v.Check(common.NotBlank(filename), "filename", "must be provided")
	if !v.Valid() {
		return "", v.ValidationError()
	}

	var result struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.doMultipart(ctx, "blogs/"+url.PathEscape(id)+"/upload-image", filename, file, &result); err != nil {
		return "", err
	}

	c.cache.Delete(KeyBlog(id))
	return result.ImageURL, nil
}

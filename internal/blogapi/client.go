package blogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blogview-app/blogview/internal/cache"
)

const defaultTimeout = 15 * time.Second

// Client talks to the remote blog API. Idempotent reads go through the
// cache; writes invalidate the entries they make stale. The zero value is
// not usable, construct with New.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *cache.Cache
	token   string
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport. Tests use it to point the
// client at a httptest server with its client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithToken seeds the bearer token, e.g. one restored from disk.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(baseURL string, store *cache.Cache, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		cache:   store,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken stores the bearer token used by authenticated operations.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token, empty when not logged in.
func (c *Client) Token() string {
	return c.token
}

// do performs one API round trip. A nil out skips response decoding; an
// empty or 204 body resolves successfully with out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, auth bool, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reqBody, auth)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart uploads a single file under the "image" form field.
func (c *Client) doMultipart(ctx context.Context, path, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return fmt.Errorf("create multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read upload file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, true)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, auth bool) (*http.Request, error) {
	if auth && c.token == "" {
		return nil, ErrNoToken
	}

	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if auth {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

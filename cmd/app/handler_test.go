package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, handler http.Handler, target string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "192.0.2.1:51234"
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	result := res.Result()
	body, err := io.ReadAll(result.Body)
	require.NoError(t, err)
	result.Body.Close()

	return result, string(body)
}

func TestHomeHandler(t *testing.T) {
	app, _ := newTestApplication(t)

	res, body := get(t, app.routes(), "/")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Post 1")
	assert.Contains(t, body, "Post 2")
	assert.Contains(t, body, `href="/posts/1"`)
}

func TestHomeHandlerSearch(t *testing.T) {
	app, hits := newTestApplication(t)

	res, body := get(t, app.routes(), "/?q=hello")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Results for <strong>hello</strong>")
	assert.Equal(t, 1, hits.count("GET /blogs/search"))
}

func TestHomeHandlerSort(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "newest", target: "/?sort=newest", wantStatus: http.StatusOK},
		{name: "likes", target: "/?sort=likes", wantStatus: http.StatusOK},
		{name: "views", target: "/?sort=views", wantStatus: http.StatusOK},
		{name: "unknown field rejected", target: "/?sort=banana", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app, _ := newTestApplication(t)

			res, _ := get(t, app.routes(), tc.target)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}

func TestHomeHandlerListingIsCached(t *testing.T) {
	app, hits := newTestApplication(t)
	handler := app.routes()

	get(t, handler, "/")
	get(t, handler, "/")

	assert.Equal(t, 1, hits.count("GET /blogs"), "second page view must reuse the cached listing")
}

func TestPostHandler(t *testing.T) {
	app, hits := newTestApplication(t)

	res, body := get(t, app.routes(), "/posts/1")

	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Rendered markdown with anchored headings and their table of contents.
	assert.Contains(t, body, `<h1 id="heading-0">Intro</h1>`)
	assert.Contains(t, body, `<h2 id="heading-1">Details</h2>`)
	assert.Contains(t, body, `href="#heading-0"`)
	assert.Contains(t, body, "<strong>bold</strong>")

	assert.Equal(t, 1, hits.count("POST /blogs/1/view"), "viewing a post bumps its counter")
}

func TestPostHandlerNotFound(t *testing.T) {
	app, _ := newTestApplication(t)

	res, _ := get(t, app.routes(), "/posts/999")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestTagsHandler(t *testing.T) {
	app, _ := newTestApplication(t)

	res, body := get(t, app.routes(), "/tags")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "go")
	assert.Contains(t, body, "web")
}

func TestHealthCheckHandler(t *testing.T) {
	app, _ := newTestApplication(t)

	res, body := get(t, app.routes(), "/healthcheck")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status": "available"`)
	assert.Contains(t, body, `"environment": "test"`)
}

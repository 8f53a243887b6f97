package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/blogview-app/blogview/internal/blogapi"
	"github.com/blogview-app/blogview/internal/cache"
	"github.com/blogview-app/blogview/internal/common"
)

func testPost(id string) blogapi.Post {
	return blogapi.Post{
		ID:        id,
		Title:     "Post " + id,
		Content:   "# Intro\n\nSome **bold** text.\n\n## Details\n\nmore",
		Tags:      blogapi.TagList{"go"},
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Likes:     2,
		Views:     5,
	}
}

// hitCounter records upstream hits per method+path.
type hitCounter struct {
	mu   sync.Mutex
	hits map[string]int
}

func (h *hitCounter) record(r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits[r.Method+" "+r.URL.Path]++
}

func (h *hitCounter) count(methodPath string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits[methodPath]
}

// newTestApplication wires an application against a fake upstream blog
// API.
func newTestApplication(t *testing.T) (*application, *hitCounter) {
	t.Helper()

	hits := &hitCounter{hits: make(map[string]int)}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.record(r)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/blogs":
			_ = json.NewEncoder(w).Encode([]blogapi.Post{testPost("1"), testPost("2")})
		case r.Method == http.MethodGet && r.URL.Path == "/blogs/search":
			_ = json.NewEncoder(w).Encode([]blogapi.Post{testPost("1")})
		case r.Method == http.MethodGet && r.URL.Path == "/blogs/sort":
			_ = json.NewEncoder(w).Encode([]blogapi.Post{testPost("2"), testPost("1")})
		case r.Method == http.MethodGet && r.URL.Path == "/blogs/tags/all":
			_ = json.NewEncoder(w).Encode([]string{"go", "web"})
		case r.Method == http.MethodGet && r.URL.Path == "/blogs/tags/popular":
			_ = json.NewEncoder(w).Encode([]blogapi.TagCount{{Tag: "go", Count: 2}})
		case r.Method == http.MethodGet && r.URL.Path == "/blogs/1":
			post := testPost("1")
			_ = json.NewEncoder(w).Encode(&post)
		case r.Method == http.MethodPost && r.URL.Path == "/blogs/1/view":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "resource not found"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	store := cache.New(cache.DefaultTTL)
	client := blogapi.New(upstream.URL, store, blogapi.WithHTTPClient(upstream.Client()))

	app := &application{
		config: &Config{Environment: "test", Version: "test"},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		client: client,
		pages:  common.NewPageCache(time.Minute, time.Minute),
	}

	return app, hits
}

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverPanic(t *testing.T) {
	app, _ := newTestApplication(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	app.recoverPanic(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestRateLimit(t *testing.T) {
	app, _ := newTestApplication(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := app.rateLimit(next)

	var limited bool
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.7:40000"
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)
		if res.Code == http.StatusTooManyRequests {
			limited = true
		}
	}

	assert.True(t, limited, "a burst beyond the limiter's capacity must be rejected")
}

func TestRateLimitIsPerClient(t *testing.T) {
	app, _ := newTestApplication(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := app.rateLimit(next)

	// Exhaust one client's burst.
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.7:40000"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	// A different IP still gets through.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.8:40000"
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
}

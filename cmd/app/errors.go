package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogview-app/blogview/internal/blogapi"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := app.render(w, status, "error.html", errorPage{Status: status, Message: message})
	if err != nil {
		app.logError(r, err)
		http.Error(w, message, status)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	app.writeErrorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) notFoundErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "resource not found")
}

func (app *application) methodNotAllowedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded, try again shortly")
}

// upstreamErrorResponse maps a blog API failure onto a page. Upstream 404s
// stay 404s; everything else is a retryable bad-gateway page, so a slow or
// down API never reads as a bug in this app.
func (app *application) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *blogapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		app.notFoundErrorResponse(w, r)
		return
	}

	app.logError(r, err)
	app.writeErrorResponse(w, r, http.StatusBadGateway, "the blog service is unavailable, please try again")
}

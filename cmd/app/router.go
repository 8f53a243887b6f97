package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/", app.homeHandler)
	router.HandlerFunc(http.MethodGet, "/posts/:id", app.postHandler)
	router.HandlerFunc(http.MethodGet, "/tags", app.tagsHandler)
	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	return app.recoverPanic(app.rateLimit(app.logRequest(router)))
}

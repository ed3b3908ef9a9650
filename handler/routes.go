package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/books", h.listBooksHandler)
	router.HandlerFunc(http.MethodPost, "/books", h.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books/:bookId", h.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/books/:bookId", h.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:bookId", h.deleteBookHandler)

	router.HandlerFunc(http.MethodGet, "/authors", h.listAuthorsHandler)
	router.HandlerFunc(http.MethodPost, "/authors", h.createAuthorHandler)
	router.HandlerFunc(http.MethodGet, "/authors/:authorId", h.showAuthorHandler)
	router.HandlerFunc(http.MethodPut, "/authors/:authorId", h.updateAuthorHandler)
	router.HandlerFunc(http.MethodDelete, "/authors/:authorId", h.deleteAuthorHandler)

	router.HandlerFunc(http.MethodGet, "/categories", h.listCategoriesHandler)
	router.HandlerFunc(http.MethodPost, "/categories", h.createCategoryHandler)
	router.HandlerFunc(http.MethodGet, "/categories/:categoryId", h.showCategoryHandler)
	router.HandlerFunc(http.MethodPut, "/categories/:categoryId", h.updateCategoryHandler)
	router.HandlerFunc(http.MethodDelete, "/categories/:categoryId", h.deleteCategoryHandler)

	router.HandlerFunc(http.MethodGet, "/healthcheck", h.healthcheckHandler)
	if h.config.Metrics.Enabled {
		router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	}

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	return h.metrics(h.requestID(h.recoverPanic(h.logRequest(h.enableCORS(h.rateLimit(h.validateRequest(router)))))))
}

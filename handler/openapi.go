package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/emzola/bookstore/api"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// openAPIValidator checks requests for documented routes against the
// embedded OpenAPI document.
type openAPIValidator struct {
	router routers.Router
}

func newOpenAPIValidator(ctx context.Context) (*openAPIValidator, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create openapi router: %w", err)
	}
	return &openAPIValidator{router: router}, nil
}

// validate returns nil for valid requests and for requests the document
// does not describe, leaving those to the router.
func (v *openAPIValidator) validate(r *http.Request) error {
	route, pathParams, err := v.router.FindRoute(r)
	if err != nil {
		return nil
	}
	if r.Body != nil && r.Body != http.NoBody {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1_048_577))
		if err != nil {
			return err
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		defer func() { r.Body = io.NopCloser(bytes.NewReader(body)) }()
	}
	return openapi3filter.ValidateRequest(r.Context(), &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
	})
}

// validationMessage reports an invalid path identifier the same way the
// repository does, so the message does not depend on which layer caught it.
func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) && requestErr.Parameter != nil && requestErr.Parameter.In == openapi3.ParameterInPath {
		return fmt.Sprintf("%s must be a number", requestErr.Parameter.Name)
	}
	return err.Error()
}

// validateRequest middleware rejects requests that do not match the OpenAPI
// document with a 400. It is a no-op when validation is disabled.
func (h *Handler) validateRequest(next http.Handler) http.Handler {
	if h.validator == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.validator.validate(r); err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, validationMessage(err))
			return
		}
		next.ServeHTTP(w, r)
	})
}

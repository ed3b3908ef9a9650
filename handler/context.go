package handler

import (
	"context"
	"net/http"
)

// Type contextKey is a custom contextKey type, with the underlying type string.
// This is necessary to prevent name collisions with external packages.
type contextKey string

const requestIDContextKey = contextKey("request_id")

// contextSetRequestID returns a new copy of the request with the request id
// added to the context.
func (h *Handler) contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

// contextGetRequestID retrieves the request id, or "" for a request that did
// not pass through the requestID middleware.
func (h *Handler) contextGetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}

package handler

import (
	"net/http"

	"github.com/emzola/bookstore/api"
	_ "github.com/emzola/bookstore/docs"
)

// handleSwaggerFile serves the embedded OpenAPI document as YAML.
func (h *Handler) handleSwaggerFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(api.Spec)
	}
}

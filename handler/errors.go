package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/bookstore/service"
)

func (h *Handler) logError(r *http.Request, err error) {
	h.logger.PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
		"request_id":     h.contextGetRequestID(r),
	})
}

// errorResponse writes the {"status", "message"} body every failed request gets.
func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := h.encodeJSON(w, status, service.Failure{Status: status, Message: message}, nil)
	if err != nil {
		h.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// failureResponse reports a service error. A *service.Failure keeps its own
// status and message; anything else is a server error.
func (h *Handler) failureResponse(w http.ResponseWriter, r *http.Request, err error) {
	var failure *service.Failure
	if errors.As(err, &failure) {
		h.errorResponse(w, r, failure.Status, failure.Message)
		return
	}
	h.serverErrorResponse(w, r, err)
}

func (h *Handler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	h.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	h.errorResponse(w, r, http.StatusNotFound, message)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	h.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (h *Handler) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (h *Handler) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "rate limit exceeded"
	h.errorResponse(w, r, http.StatusTooManyRequests, message)
}

func (h *Handler) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	message := "invalid authentication credentials"
	h.errorResponse(w, r, http.StatusUnauthorized, message)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/emzola/bookstore/data/dto"
)

func (h *Handler) listAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.ListAuthors(r.Context())
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, authors, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) createAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateAuthorRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	author, err := h.service.CreateAuthor(r.Context(), requestBody)
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/authors/%d", author.ID))
	err = h.encodeJSON(w, http.StatusCreated, author, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showAuthorHandler(w http.ResponseWriter, r *http.Request) {
	author, err := h.service.GetAuthor(r.Context(), h.readIDParam(r, "authorId"))
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, author, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateAuthorRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	author, err := h.service.UpdateAuthor(r.Context(), h.readIDParam(r, "authorId"), requestBody)
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, author, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deleteAuthorHandler(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteAuthor(r.Context(), h.readIDParam(r, "authorId"))
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

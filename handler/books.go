package handler

import (
	"fmt"
	"net/http"

	"github.com/emzola/bookstore/data/dto"
)

func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks(r.Context())
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, books, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateBookRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.CreateBook(r.Context(), requestBody)
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/books/%d", book.ID))
	err = h.encodeJSON(w, http.StatusCreated, book, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	book, err := h.service.GetBook(r.Context(), h.readIDParam(r, "bookId"))
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateBookRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.UpdateBook(r.Context(), h.readIDParam(r, "bookId"), requestBody)
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteBook(r.Context(), h.readIDParam(r, "bookId"))
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

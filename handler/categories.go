package handler

import (
	"fmt"
	"net/http"

	"github.com/emzola/bookstore/data/dto"
)

// ListCategories godoc
// @Summary List all categories
// @Description This endpoint lists all categories in the order they were created
// @Tags categories
// @Accept  json
// @Produce json
// @Success 200 {array} data.Category
// @Failure 500
// @Router /categories [get]
func (h *Handler) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, categories, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Description This endpoint creates a new category
// @Tags categories
// @Accept  json
// @Produce json
// @Param body body dto.CreateCategoryRequestBody true "Category name"
// @Success 201 {object} data.Category
// @Failure 400
// @Failure 500
// @Router /categories [post]
func (h *Handler) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateCategoryRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	category, err := h.service.CreateCategory(r.Context(), requestBody)
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/categories/%d", category.ID))
	err = h.encodeJSON(w, http.StatusCreated, category, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowCategory godoc
// @Summary Show details of a category
// @Description This endpoint shows the details of a specific category
// @Tags categories
// @Accept  json
// @Produce json
// @Param categoryId path int true "ID of category to show"
// @Success 200 {object} data.Category
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /categories/{categoryId} [get]
func (h *Handler) showCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategory(r.Context(), h.readIDParam(r, "categoryId"))
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, category, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateCategory godoc
// @Summary Update a category
// @Description This endpoint updates the fields present in the request body
// @Tags categories
// @Accept  json
// @Produce json
// @Param categoryId path int true "ID of category to update"
// @Param body body dto.UpdateCategoryRequestBody true "Fields to update"
// @Success 200 {object} data.Category
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /categories/{categoryId} [put]
func (h *Handler) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateCategoryRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	category, err := h.service.UpdateCategory(r.Context(), h.readIDParam(r, "categoryId"), requestBody)
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, category, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description This endpoint deletes a specific category
// @Tags categories
// @Accept  json
// @Produce json
// @Param categoryId path int true "ID of category to delete"
// @Success 204
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /categories/{categoryId} [delete]
func (h *Handler) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteCategory(r.Context(), h.readIDParam(r, "categoryId"))
	if err != nil {
		h.failureResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

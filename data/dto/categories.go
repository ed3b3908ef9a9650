package dto

import "github.com/emzola/bookstore/data"

// CreateCategoryRequestBody defines the request body for CreateCategory service.
type CreateCategoryRequestBody struct {
	Name string `json:"name"`
}

func (rb CreateCategoryRequestBody) Category() data.Category {
	return data.Category{Name: rb.Name}
}

// UpdateCategoryRequestBody defines the request body for UpdateCategory service.
type UpdateCategoryRequestBody struct {
	Name *string `json:"name"`
}

func (rb UpdateCategoryRequestBody) Apply(category *data.Category) {
	if rb.Name != nil {
		category.Name = *rb.Name
	}
}

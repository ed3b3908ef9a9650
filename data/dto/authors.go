package dto

import "github.com/emzola/bookstore/data"

// CreateAuthorRequestBody defines the request body for CreateAuthor service.
type CreateAuthorRequestBody struct {
	Name string `json:"name"`
}

func (rb CreateAuthorRequestBody) Author() data.Author {
	return data.Author{Name: rb.Name}
}

// UpdateAuthorRequestBody defines the request body for UpdateAuthor service.
type UpdateAuthorRequestBody struct {
	Name *string `json:"name"`
}

func (rb UpdateAuthorRequestBody) Apply(author *data.Author) {
	if rb.Name != nil {
		author.Name = *rb.Name
	}
}

package dto

import "github.com/emzola/bookstore/data"

// CreateBookRequestBody defines the request body for CreateBook service.
type CreateBookRequestBody struct {
	Title         string `json:"title"`
	AuthorID      int64  `json:"author_id"`
	CategoryID    int64  `json:"category_id"`
	PublishedYear int64  `json:"published_year"`
}

// Book copies the request fields into a new, unnumbered book record.
func (rb CreateBookRequestBody) Book() data.Book {
	return data.Book{
		Title:         rb.Title,
		AuthorID:      rb.AuthorID,
		CategoryID:    rb.CategoryID,
		PublishedYear: rb.PublishedYear,
	}
}

// UpdateBookRequestBody defines the request body for UpdateBook service. The fields are set
// to a pointer type to allow partial updates based on whether the value if set to nil.
// There is no ID field, so an "id" key in the body is ignored.
type UpdateBookRequestBody struct {
	Title         *string `json:"title"`
	AuthorID      *int64  `json:"author_id"`
	CategoryID    *int64  `json:"category_id"`
	PublishedYear *int64  `json:"published_year"`
}

// Apply merges the non-nil fields into book.
func (rb UpdateBookRequestBody) Apply(book *data.Book) {
	if rb.Title != nil {
		book.Title = *rb.Title
	}
	if rb.AuthorID != nil {
		book.AuthorID = *rb.AuthorID
	}
	if rb.CategoryID != nil {
		book.CategoryID = *rb.CategoryID
	}
	if rb.PublishedYear != nil {
		book.PublishedYear = *rb.PublishedYear
	}
}

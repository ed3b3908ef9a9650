package repository

import "github.com/emzola/bookstore/data"

type Repository interface {
	books
	authors
	categories
}

// Repository defines the app's repository layer: one in-memory store per
// entity kind. The stores are independent; a book's author and category ids
// are not checked against the other two.
type repository struct {
	books      *Store[data.Book, *data.Book]
	authors    *Store[data.Author, *data.Author]
	categories *Store[data.Category, *data.Category]
}

// New creates a new instance of Repository with empty stores.
func New() *repository {
	return &repository{
		books:      NewStore[data.Book]("Book", "bookId"),
		authors:    NewStore[data.Author]("Author", "authorId"),
		categories: NewStore[data.Category]("Category", "categoryId"),
	}
}

package repository

import (
	"context"

	"github.com/emzola/bookstore/data"
)

type books interface {
	GetAllBooks(ctx context.Context) ([]data.Book, error)
	GetBook(ctx context.Context, bookID string) (data.Book, error)
	CreateBook(ctx context.Context, book data.Book) (data.Book, error)
	UpdateBook(ctx context.Context, bookID string, patch Patch[data.Book]) (data.Book, error)
	DeleteBook(ctx context.Context, bookID string) error
}

// GetAllBooks retrieves all book records.
func (r *repository) GetAllBooks(ctx context.Context) ([]data.Book, error) {
	return r.books.List(ctx)
}

// GetBook retrieves a specific book record.
func (r *repository) GetBook(ctx context.Context, bookID string) (data.Book, error) {
	return r.books.Get(ctx, bookID)
}

// CreateBook inserts a new book record.
func (r *repository) CreateBook(ctx context.Context, book data.Book) (data.Book, error) {
	return r.books.Create(ctx, book)
}

// UpdateBook merges patch into a specific book record.
func (r *repository) UpdateBook(ctx context.Context, bookID string, patch Patch[data.Book]) (data.Book, error) {
	return r.books.Update(ctx, bookID, patch)
}

// DeleteBook deletes a specific book record.
func (r *repository) DeleteBook(ctx context.Context, bookID string) error {
	return r.books.Delete(ctx, bookID)
}

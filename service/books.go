package service

import (
	"context"
	"strconv"

	"github.com/emzola/bookstore/data"
	"github.com/emzola/bookstore/data/dto"
)

type books interface {
	ListBooks(ctx context.Context) ([]data.Book, error)
	GetBook(ctx context.Context, bookID string) (data.Book, error)
	CreateBook(ctx context.Context, requestBody dto.CreateBookRequestBody) (data.Book, error)
	UpdateBook(ctx context.Context, bookID string, requestBody dto.UpdateBookRequestBody) (data.Book, error)
	DeleteBook(ctx context.Context, bookID string) error
}

// ListBooks service returns every book in insertion order.
func (s *service) ListBooks(ctx context.Context) ([]data.Book, error) {
	books, err := s.repo.GetAllBooks(ctx)
	if err != nil {
		return nil, fail(err)
	}
	return books, nil
}

// GetBook service retrieves a book.
func (s *service) GetBook(ctx context.Context, bookID string) (data.Book, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return data.Book{}, fail(err)
	}
	return book, nil
}

// CreateBook service stores a new book. The author and category ids are
// stored as given.
func (s *service) CreateBook(ctx context.Context, requestBody dto.CreateBookRequestBody) (data.Book, error) {
	book, err := s.repo.CreateBook(ctx, requestBody.Book())
	if err != nil {
		return data.Book{}, fail(err)
	}
	s.logger.PrintDebug("book created", map[string]string{"id": strconv.FormatInt(book.ID, 10)})
	return book, nil
}

// UpdateBook service merges the fields present in requestBody into a book.
func (s *service) UpdateBook(ctx context.Context, bookID string, requestBody dto.UpdateBookRequestBody) (data.Book, error) {
	book, err := s.repo.UpdateBook(ctx, bookID, requestBody)
	if err != nil {
		return data.Book{}, fail(err)
	}
	return book, nil
}

// DeleteBook service deletes a book.
func (s *service) DeleteBook(ctx context.Context, bookID string) error {
	err := s.repo.DeleteBook(ctx, bookID)
	if err != nil {
		return fail(err)
	}
	s.logger.PrintDebug("book deleted", map[string]string{"id": bookID})
	return nil
}

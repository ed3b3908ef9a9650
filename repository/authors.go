package repository

import (
	"context"

	"github.com/emzola/bookstore/data"
)

type authors interface {
	GetAllAuthors(ctx context.Context) ([]data.Author, error)
	GetAuthor(ctx context.Context, authorID string) (data.Author, error)
	CreateAuthor(ctx context.Context, author data.Author) (data.Author, error)
	UpdateAuthor(ctx context.Context, authorID string, patch Patch[data.Author]) (data.Author, error)
	DeleteAuthor(ctx context.Context, authorID string) error
}

func (r *repository) GetAllAuthors(ctx context.Context) ([]data.Author, error) {
	return r.authors.List(ctx)
}

func (r *repository) GetAuthor(ctx context.Context, authorID string) (data.Author, error) {
	return r.authors.Get(ctx, authorID)
}

func (r *repository) CreateAuthor(ctx context.Context, author data.Author) (data.Author, error) {
	return r.authors.Create(ctx, author)
}

func (r *repository) UpdateAuthor(ctx context.Context, authorID string, patch Patch[data.Author]) (data.Author, error) {
	return r.authors.Update(ctx, authorID, patch)
}

func (r *repository) DeleteAuthor(ctx context.Context, authorID string) error {
	return r.authors.Delete(ctx, authorID)
}

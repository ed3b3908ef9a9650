package repository

import (
	"context"

	"github.com/emzola/bookstore/data"
)

type categories interface {
	GetAllCategories(ctx context.Context) ([]data.Category, error)
	GetCategory(ctx context.Context, categoryID string) (data.Category, error)
	CreateCategory(ctx context.Context, category data.Category) (data.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, patch Patch[data.Category]) (data.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// GetAllCategories retrieves all category records.
func (r *repository) GetAllCategories(ctx context.Context) ([]data.Category, error) {
	return r.categories.List(ctx)
}

// GetCategory retrieves a category record.
func (r *repository) GetCategory(ctx context.Context, categoryID string) (data.Category, error) {
	return r.categories.Get(ctx, categoryID)
}

func (r *repository) CreateCategory(ctx context.Context, category data.Category) (data.Category, error) {
	return r.categories.Create(ctx, category)
}

func (r *repository) UpdateCategory(ctx context.Context, categoryID string, patch Patch[data.Category]) (data.Category, error) {
	return r.categories.Update(ctx, categoryID, patch)
}

// DeleteCategory deletes a category record.
func (r *repository) DeleteCategory(ctx context.Context, categoryID string) error {
	return r.categories.Delete(ctx, categoryID)
}

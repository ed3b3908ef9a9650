package service

import (
	"context"
	"strconv"

	"github.com/emzola/bookstore/data"
	"github.com/emzola/bookstore/data/dto"
)

type categories interface {
	ListCategories(ctx context.Context) ([]data.Category, error)
	GetCategory(ctx context.Context, categoryID string) (data.Category, error)
	CreateCategory(ctx context.Context, requestBody dto.CreateCategoryRequestBody) (data.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, requestBody dto.UpdateCategoryRequestBody) (data.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ListCategories service retrieves a list of categories.
func (s *service) ListCategories(ctx context.Context) ([]data.Category, error) {
	categories, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, fail(err)
	}
	return categories, nil
}

// GetCategory service retrieves a category record.
func (s *service) GetCategory(ctx context.Context, categoryID string) (data.Category, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return data.Category{}, fail(err)
	}
	return category, nil
}

func (s *service) CreateCategory(ctx context.Context, requestBody dto.CreateCategoryRequestBody) (data.Category, error) {
	category, err := s.repo.CreateCategory(ctx, requestBody.Category())
	if err != nil {
		return data.Category{}, fail(err)
	}
	s.logger.PrintDebug("category created", map[string]string{"id": strconv.FormatInt(category.ID, 10)})
	return category, nil
}

func (s *service) UpdateCategory(ctx context.Context, categoryID string, requestBody dto.UpdateCategoryRequestBody) (data.Category, error) {
	category, err := s.repo.UpdateCategory(ctx, categoryID, requestBody)
	if err != nil {
		return data.Category{}, fail(err)
	}
	return category, nil
}

func (s *service) DeleteCategory(ctx context.Context, categoryID string) error {
	err := s.repo.DeleteCategory(ctx, categoryID)
	if err != nil {
		return fail(err)
	}
	s.logger.PrintDebug("category deleted", map[string]string{"id": categoryID})
	return nil
}

package service

import (
	"context"
	"strconv"

	"github.com/emzola/bookstore/data"
	"github.com/emzola/bookstore/data/dto"
)

type authors interface {
	ListAuthors(ctx context.Context) ([]data.Author, error)
	GetAuthor(ctx context.Context, authorID string) (data.Author, error)
	CreateAuthor(ctx context.Context, requestBody dto.CreateAuthorRequestBody) (data.Author, error)
	UpdateAuthor(ctx context.Context, authorID string, requestBody dto.UpdateAuthorRequestBody) (data.Author, error)
	DeleteAuthor(ctx context.Context, authorID string) error
}

func (s *service) ListAuthors(ctx context.Context) ([]data.Author, error) {
	authors, err := s.repo.GetAllAuthors(ctx)
	if err != nil {
		return nil, fail(err)
	}
	return authors, nil
}

func (s *service) GetAuthor(ctx context.Context, authorID string) (data.Author, error) {
	author, err := s.repo.GetAuthor(ctx, authorID)
	if err != nil {
		return data.Author{}, fail(err)
	}
	return author, nil
}

func (s *service) CreateAuthor(ctx context.Context, requestBody dto.CreateAuthorRequestBody) (data.Author, error) {
	author, err := s.repo.CreateAuthor(ctx, requestBody.Author())
	if err != nil {
		return data.Author{}, fail(err)
	}
	s.logger.PrintDebug("author created", map[string]string{"id": strconv.FormatInt(author.ID, 10)})
	return author, nil
}

func (s *service) UpdateAuthor(ctx context.Context, authorID string, requestBody dto.UpdateAuthorRequestBody) (data.Author, error) {
	author, err := s.repo.UpdateAuthor(ctx, authorID, requestBody)
	if err != nil {
		return data.Author{}, fail(err)
	}
	return author, nil
}

func (s *service) DeleteAuthor(ctx context.Context, authorID string) error {
	err := s.repo.DeleteAuthor(ctx, authorID)
	if err != nil {
		return fail(err)
	}
	s.logger.PrintDebug("author deleted", map[string]string{"id": authorID})
	return nil
}

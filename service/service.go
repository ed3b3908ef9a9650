package service

import (
	"github.com/emzola/bookstore/internal/jsonlog"
	"github.com/emzola/bookstore/repository"
)

type Service interface {
	books
	authors
	categories
}

// Services defines a service layer.
type service struct {
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		logger: logger,
		repo:   repo,
	}
}

package handler

import (
	"context"

	"github.com/emzola/bookstore/config"
	"github.com/emzola/bookstore/internal/jsonlog"
	"github.com/emzola/bookstore/service"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// Handler defines Handler layer.
type Handler struct {
	config    config.Config
	logger    *jsonlog.Logger
	limiters  *ttlcache.Cache[string, *rate.Limiter]
	service   service.Service
	validator *openAPIValidator
}

// New creates a new instance of Handler. limiters holds one rate limiter per
// client IP; its TTL decides how long an idle client is remembered. When
// request validation is enabled the OpenAPI document is loaded here.
func New(cfg config.Config, logger *jsonlog.Logger, limiters *ttlcache.Cache[string, *rate.Limiter], service service.Service) (*Handler, error) {
	h := &Handler{
		config:   cfg,
		logger:   logger,
		limiters: limiters,
		service:  service,
	}
	if cfg.OpenAPI.Validate {
		v, err := newOpenAPIValidator(context.Background())
		if err != nil {
			return nil, err
		}
		h.validator = v
	}
	return h, nil
}

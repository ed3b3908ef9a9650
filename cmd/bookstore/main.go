package main

import (
	"flag"
	"os"
	"time"

	"github.com/emzola/bookstore/config"
	"github.com/emzola/bookstore/handler"
	"github.com/emzola/bookstore/internal/jsonlog"
	"github.com/emzola/bookstore/repository"
	"github.com/emzola/bookstore/service"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

// @title  Bookstore API
// @version 1.0.0
// @description Catalog of books, authors and categories.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to a YAML configuration file")
	flag.Usage = config.Usage(flag.CommandLine)
	flag.Parse()

	// Initialize configuration
	cfg, err := config.Decode(*configPath)
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}
	level, err := jsonlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}
	logger.SetLevel(level)

	// Rate limiters per client IP, forgotten after three idle minutes
	limiters := ttlcache.New(ttlcache.WithTTL[string, *rate.Limiter](3 * time.Minute))
	go limiters.Start()
	defer limiters.Stop()

	// Application layers
	repo := repository.New()
	service := service.New(logger, repo)
	handler, err := handler.New(cfg, logger, limiters, service)
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(logger)
	if err != nil {
		logger.PrintFatal(err, nil)
		os.Exit(1)
	}
}

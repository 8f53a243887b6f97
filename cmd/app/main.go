package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/blogview-app/blogview/internal/blogapi"
	"github.com/blogview-app/blogview/internal/cache"
	"github.com/blogview-app/blogview/internal/common"
)

type application struct {
	config *Config
	logger *slog.Logger
	client *blogapi.Client
	pages  *common.PageCache
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.APIBaseURL == "" {
		logger.Error("API_BASE_URL must be set")
		os.Exit(1)
	}

	// One response cache for the process lifetime; entries expire on their
	// own, nothing tears it down.
	store := cache.New(cfg.CacheTTL)

	client := blogapi.New(cfg.APIBaseURL, store,
		blogapi.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout}))

	app := &application{
		config: cfg,
		logger: logger,
		client: client,
		pages:  common.NewPageCache(cfg.CacheTTL, 2*cfg.CacheTTL),
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// Command aipim-api serves the aipim client library over HTTP: POST
// /v1/messages accepts {"model", "text", "images"} and returns the
// normalized {"text", "metadata"} response or a classified error.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/aipim/aipim/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	srv := newServer(cfg.Model, cfg.BaseURL, logger)

	logger.Info("listening", "addr", cfg.Listen, "model", cfg.Model)
	if err := http.ListenAndServe(cfg.Listen, srv.routes()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

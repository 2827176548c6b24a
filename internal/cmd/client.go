package cmd

import (
	"strings"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/config"
	"github.com/gravitrone/bugform/internal/logging"
)

// NewClient builds an API client from cfg. A non-empty server overrides the
// configured URL.
func NewClient(cfg *config.Config, server string) *api.Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	opts := []api.Option{
		api.WithTimeout(cfg.Timeout()),
		api.WithRetryMax(cfg.RetryMax),
		api.WithLogger(*logging.L()),
	}

	url := strings.TrimSpace(server)
	if url == "" {
		url = strings.TrimSpace(cfg.Server())
	}
	if url == "" {
		return api.NewDefaultClient(cfg.APIKey, opts...)
	}
	return api.NewClient(url, cfg.APIKey, opts...)
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/webluciano/folio/internal/article"
	"github.com/webluciano/folio/internal/config"
	"github.com/webluciano/folio/internal/logging"
	"github.com/webluciano/folio/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger for the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(os.Stderr, logging.Level(cfg.LogLevel, verbose))
}

// newSource resolves data_source. Relative file paths are taken from site_dir.
func newSource(cfg *config.Config) article.Source {
	loc := cfg.DataSource
	if !isURL(loc) && !filepath.IsAbs(loc) && cfg.SiteDir != "" {
		loc = filepath.Join(cfg.SiteDir, loc)
	}
	return article.NewSource(loc)
}

// newRenderer builds a renderer whose card links follow linkPattern.
func newRenderer(cfg *config.Config, linkPattern string) *render.Renderer {
	return render.New(render.Options{
		SiteTitle:   cfg.Site.Title,
		LinkPattern: linkPattern,
		Format:      render.ContentFormat(cfg.ContentFormat),
	})
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

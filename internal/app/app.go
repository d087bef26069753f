package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/labwarego/internal/catalog"
	"github.com/specialistvlad/labwarego/internal/config"
	"github.com/specialistvlad/labwarego/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	catalog *catalog.Catalog
	config  *Config
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. Broken definition files are fatal startup errors and
// cause a panic.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...catalog.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cat := catalog.New(ctx)
	if len(modules) == 0 {
		modules = coreModules
	}
	cat.RegisterModules(modules...)
	logger.Debug("Built-in labware modules registered.", "count", len(modules))

	if cfg.DefinitionsPath != "" {
		model, err := loader.Load(ctx, cfg.DefinitionsPath)
		if err != nil {
			panic(fmt.Errorf("failed to load definitions: %w", err))
		}
		if err := cat.PopulateFromModel(ctx, model); err != nil {
			panic(err)
		}
		logger.Debug("Definitions loaded.", "path", cfg.DefinitionsPath, "lids", len(model.Lids))
	}

	return &App{
		outW:    outW,
		logger:  logger,
		catalog: cat,
		config:  cfg,
	}
}

// Catalog returns the application's catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

package cmd

import (
	"context"
	"fmt"

	"github.com/Velesio/velesio-aiserver/internal/config"
	"github.com/Velesio/velesio-aiserver/internal/db"
	"github.com/Velesio/velesio-aiserver/internal/search"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
	"github.com/Velesio/velesio-aiserver/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openThemeStore opens the preference database and wraps it in a theme store.
// The caller closes the returned database.
func openThemeStore(cfg *config.Config) (*db.DB, *theme.Store, error) {
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return database, theme.NewStore(database, theme.Theme(cfg.DefaultTheme)), nil
}

// loadSearchService fetches the search document once. A failed load yields
// an inert service.
func loadSearchService(ctx context.Context, cfg *config.Config) *search.Service {
	return search.LoadService(ctx, searchindex.NewLoader(cfg.SearchIndexSource()))
}

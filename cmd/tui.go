package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Velesio/velesio-aiserver/internal/browser"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
	"github.com/Velesio/velesio-aiserver/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search the site interactively in the terminal",
	Long: `Opens a full-screen search box over the site index. Results update as you
type; enter or a click opens the page in the browser, ctrl+y copies its link
and ctrl+t switches between the light and dark theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// The alternate screen owns the terminal, so diagnostics go to a file.
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "tui.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))
		defer slog.SetDefault(previous)

		database, themes, err := openThemeStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		return tui.Run(context.Background(), tui.Config{
			ProjectName: cfg.ProjectName,
			Loader:      searchindex.NewLoader(cfg.SearchIndexSource()),
			Debounce:    cfg.Debounce(),
			Themes:      themes,
			ResolveURL:  cfg.PageURL,
			Navigate: func(url string) error {
				return browser.Open(cfg.PageURL(url))
			},
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

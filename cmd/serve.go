package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Velesio/velesio-aiserver/internal/browser"
	"github.com/Velesio/velesio-aiserver/internal/progress"
	"github.com/Velesio/velesio-aiserver/internal/search"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
	"github.com/Velesio/velesio-aiserver/internal/server"
	"github.com/Velesio/velesio-aiserver/internal/site"
)

var (
	servePort  int
	serveBuild bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built site with the search and theme APIs",
	Long: `Starts an HTTP server that serves the built site under the base_url path
and exposes /api/search, /api/search/html, /api/search/stats and /api/theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveBuild {
			if _, err := site.NewGenerator(cfg, progress.NewReporter()).Build(ctx); err != nil {
				return fmt.Errorf("building site: %w", err)
			}
		}

		database, themes, err := openThemeStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		svc := search.LoadService(ctx, searchindex.NewLoader(filepath.Join(cfg.OutputDir, site.SearchFile)))

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			SiteDir:  cfg.OutputDir,
			BasePath: cfg.BasePath(),
			AllowAll: cfg.Server.AllowAllOrigins,
		}, svc, themes)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Error("shutting down server", "error", err)
			}
		}()

		url := fmt.Sprintf("http://localhost:%d%s", cfg.Server.Port, cfg.BasePath())
		fmt.Fprintf(os.Stderr, "docsite %s serving %s\n", Version, url)
		fmt.Fprintf(os.Stderr, "  Site: %s\n", cfg.OutputDir)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
		if stats := svc.Stats(); stats.Ready {
			fmt.Fprintf(os.Stderr, "  Items indexed: %d\n", stats.Total)
		} else {
			fmt.Fprintf(os.Stderr, "  Search unavailable: %v\n", svc.Err())
		}

		if serveOpen {
			go func() {
				time.Sleep(300 * time.Millisecond)
				if err := browser.Open(url); err != nil {
					slog.Warn("opening browser", "error", err)
				}
			}()
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 4000, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveBuild, "build", false, "build the site before serving")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in the default browser")
	rootCmd.AddCommand(serveCmd)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Velesio/velesio-aiserver/internal/progress"
	"github.com/Velesio/velesio-aiserver/internal/search"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
	"github.com/Velesio/velesio-aiserver/internal/site"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the markdown sources into a static site",
	Long: `Renders every markdown page under source_dir into HTML, writes the
stylesheet and script, and produces search.json grouped by collection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		gen := site.NewGenerator(cfg, progress.NewReporter())
		res, err := gen.Build(ctx)
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}

		fmt.Printf("Built %d pages into %s\n", res.Pages, cfg.OutputDir)
		fmt.Printf("Search index: %s\n", res.SearchFile)
		for _, t := range searchindex.Types {
			fmt.Printf("  %-18s %d\n", search.TypeLabel(t), res.Counts[t])
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides output_dir)")
	rootCmd.AddCommand(buildCmd)
}

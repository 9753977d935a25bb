package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/Velesio/velesio-aiserver/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the site search to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc := loadSearchService(context.Background(), cfg)
		if !svc.Ready() {
			fmt.Fprintf(os.Stderr, "Warning: could not load search index from %s: %v\n", cfg.SearchIndexSource(), svc.Err())
			fmt.Fprintf(os.Stderr, "Search results will be empty. Run `docsite build` first.\n")
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "docsite MCP server started on stdio (items=%d)\n", len(svc.Items()))

		srv := mcpserver.NewServer(svc, cfg.BaseURL)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

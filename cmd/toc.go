package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Velesio/velesio-aiserver/internal/toc"
)

var tocFormat string

var tocCmd = &cobra.Command{
	Use:   "toc FILE",
	Short: "Print the table of contents of a markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		entries := toc.Extract(source)
		switch tocFormat {
		case "text":
			if len(entries) == 0 {
				fmt.Fprintln(os.Stderr, "No table of contents: the page has fewer than two headings.")
				return nil
			}
			fmt.Print(toc.RenderText(entries))
		case "html":
			fmt.Println(toc.RenderHTML(entries))
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		default:
			return fmt.Errorf("unknown format %q: use text, html or json", tocFormat)
		}
		return nil
	},
}

func init() {
	tocCmd.Flags().StringVarP(&tocFormat, "format", "f", "text", "output format: text, html or json")
	rootCmd.AddCommand(tocCmd)
}

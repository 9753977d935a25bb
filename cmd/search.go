package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Velesio/velesio-aiserver/internal/search"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

var (
	searchLimit int
	searchType  string
	searchJSON  bool
	searchIndex string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the site index from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		query := strings.TrimSpace(strings.Join(args, " "))
		if search.QueryTooShort(query) {
			return fmt.Errorf("query must be at least %d characters", search.MinQueryLength)
		}

		source := cfg.SearchIndexSource()
		if searchIndex != "" {
			source = searchIndex
		}
		items, err := searchindex.NewLoader(source).Load(context.Background())
		if err != nil {
			return fmt.Errorf("loading search index: %w", err)
		}

		if searchType != "" {
			t := searchindex.ItemType(searchType)
			filtered := items[:0:0]
			for _, it := range items {
				if it.Type == t {
					filtered = append(filtered, it)
				}
			}
			items = filtered
		}

		d := search.Render(search.SearchN(query, items, searchLimit), query, search.PlainMarker)

		if searchJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}

		if d.Empty {
			fmt.Println(search.NoResultsText)
			return nil
		}
		for i, r := range d.Results {
			fmt.Printf("%d. %s\n", i+1, r.Title)
			fmt.Printf("   %s • %s\n", r.TypeLabel, cfg.PageURL(r.URL))
			if r.Excerpt != "" {
				fmt.Printf("   %s\n", r.Excerpt)
			}
			if verbose {
				fmt.Printf("   score %.1f, %d matches\n", r.Score, r.MatchedWords)
			}
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", search.MaxResults, "maximum number of results (at most 10)")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "only search one collection (post, page, component, unity_integration)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the display model as JSON")
	searchCmd.Flags().StringVar(&searchIndex, "index", "", "search document path or URL (overrides search_index)")
	rootCmd.AddCommand(searchCmd)
}

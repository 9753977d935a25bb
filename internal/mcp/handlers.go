package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Velesio/velesio-aiserver/internal/search"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

// emphasis marks matches the way markdown bolds text.
var emphasis = search.Marker{Open: "**", Close: "**"}

// handleSearchDocs runs a search pass over the loaded index.
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	if !s.svc.Ready() {
		return mcp.NewToolResultError(fmt.Sprintf("search index unavailable: %v", s.svc.Err())), nil
	}
	if search.QueryTooShort(query) {
		return mcp.NewToolResultError(fmt.Sprintf("query must be at least %d characters", search.MinQueryLength)), nil
	}

	limit := request.GetInt("limit", search.MaxResults)
	if limit <= 0 {
		limit = search.MaxResults
	}
	limit = min(limit, search.MaxResults)

	items := s.svc.Items()
	if typeStr := request.GetString("type_filter", ""); typeStr != "" {
		items = filterByType(items, searchindex.ItemType(typeStr))
	}

	results := search.SearchN(query, items, limit)
	if len(results) == 0 {
		return mcp.NewToolResultText(search.NoResultsText), nil
	}

	return mcp.NewToolResultText(s.formatResults(search.Render(results, query, emphasis))), nil
}

// handleIndexStats reports per-type counts.
func (s *Server) handleIndexStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := s.svc.Stats()

	var sb strings.Builder
	if !stats.Ready {
		sb.WriteString("Search index: unavailable\n")
	} else {
		sb.WriteString("Search index: ready\n")
	}
	fmt.Fprintf(&sb, "Total items: %d\n", stats.Total)
	for _, t := range searchindex.Types {
		fmt.Fprintf(&sb, "%s: %d\n", search.TypeLabel(t), stats.ByType[t])
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func filterByType(items []searchindex.Item, t searchindex.ItemType) []searchindex.Item {
	var out []searchindex.Item
	for _, it := range items {
		if it.Type == t {
			out = append(out, it)
		}
	}
	return out
}

// formatResults converts a display model into text for agent consumption.
func (s *Server) formatResults(d search.Display) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d result(s) for %q:\n", len(d.Results), d.Query)

	for _, r := range d.Results {
		fmt.Fprintf(&sb, "\n%d. %s\n", r.Index+1, r.Title)
		fmt.Fprintf(&sb, "   %s • %s\n", r.TypeLabel, s.resolve(r.URL))
		if r.Excerpt != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Excerpt)
		}
		fmt.Fprintf(&sb, "   Score: %.1f (%d matches)\n", r.Score, r.MatchedWords)
	}
	return sb.String()
}

func (s *Server) resolve(rel string) string {
	if s.baseURL == "" {
		return rel
	}
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return rel
	}
	ref, err := url.Parse(rel)
	if err != nil {
		return rel
	}
	return base.ResolveReference(ref).String()
}

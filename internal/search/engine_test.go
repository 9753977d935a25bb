package search

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Setup Guide", []string{"setup", "guide"}},
		{"  spaced\t\tout \n query ", []string{"spaced", "out", "query"}},
		{"a b c", []string{}},
		{"a LLM x", []string{"llm"}},
		{"é ok", []string{"ok"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestQueryTooShort(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"a", true},
		{"  a  ", true},
		{"ab", false},
		{"é", true},
		{"éé", false},
	}
	for _, tt := range tests {
		if got := QueryTooShort(tt.query); got != tt.want {
			t.Errorf("QueryTooShort(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSearchTitleBeatsContent(t *testing.T) {
	items := []searchindex.Item{
		{Title: "Setup Guide", Content: "install steps", URL: "/a"},
		{Title: "FAQ", Content: "setup questions and setup answers", URL: "/b"},
	}

	results := Search("setup", items)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].URL != "/a" || results[1].URL != "/b" {
		t.Errorf("order = [%s %s], want [/a /b]", results[0].URL, results[1].URL)
	}
	if results[0].Score != 10 {
		t.Errorf("title match score = %v, want 10", results[0].Score)
	}
	// Content counts once per field check, not per occurrence.
	if results[1].Score != 1 {
		t.Errorf("content match score = %v, want 1", results[1].Score)
	}
}

func TestSearchMultiWordTitleHasNoExactBonus(t *testing.T) {
	items := []searchindex.Item{{Title: "Setup Guide", Content: "install steps", URL: "/a"}}

	results := Search("Setup Guide", items)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	// Both tokens hit the title (10 each), neither equals the whole title.
	if results[0].Score != 20 {
		t.Errorf("score = %v, want 20", results[0].Score)
	}
	if results[0].MatchedWords != 2 {
		t.Errorf("matched = %d, want 2", results[0].MatchedWords)
	}
}

func TestSearchExactTitleBonus(t *testing.T) {
	items := []searchindex.Item{{Title: "FAQ", Content: "questions", URL: "/faq"}}

	results := Search("faq", items)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score != 30 {
		t.Errorf("score = %v, want 30", results[0].Score)
	}
}

func TestSearchMatchedWordsTalliesFieldChecks(t *testing.T) {
	items := []searchindex.Item{{Title: "Setup", Content: "setup", Excerpt: "setup", URL: "/s"}}

	results := Search("setup", items)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.MatchedWords != 3 {
		t.Errorf("matched = %d, want 3", r.MatchedWords)
	}
	// (10 + 20 + 1 + 3) * 3/1
	if r.Score != 102 {
		t.Errorf("score = %v, want 102", r.Score)
	}
}

func TestSearchScalesByQueryCoverage(t *testing.T) {
	items := []searchindex.Item{{Title: "Setup Guide", Content: "install", URL: "/a"}}

	results := Search("setup zebra", items)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score != 5 {
		t.Errorf("score = %v, want 5", results[0].Score)
	}
}

func TestSearchSubstringSemantics(t *testing.T) {
	items := []searchindex.Item{{Title: "Taxonomy", Content: "every category is listed", URL: "/c"}}

	results := Search("cat", items)
	if len(results) != 1 {
		t.Fatalf("expected substring match on %q, got %d results", "category", len(results))
	}
}

func TestSearchExcludesNonMatches(t *testing.T) {
	items := []searchindex.Item{
		{Title: "Alpha", Content: "first", URL: "/a"},
		{Title: "Beta", Content: "second", URL: "/b"},
	}

	results := Search("alpha", items)
	if len(results) != 1 || results[0].URL != "/a" {
		t.Fatalf("got %+v, want only /a", results)
	}
	for _, r := range results {
		if r.MatchedWords < 1 {
			t.Errorf("result %s has MatchedWords %d", r.URL, r.MatchedWords)
		}
	}
}

func TestSearchShortTokensOnly(t *testing.T) {
	items := []searchindex.Item{{Title: "a b c", Content: "a b c", URL: "/a"}}

	if results := Search("a b", items); len(results) != 0 {
		t.Errorf("got %d results for short tokens, want 0", len(results))
	}
}

func TestSearchStableAndTruncated(t *testing.T) {
	var items []searchindex.Item
	for i := 0; i < 15; i++ {
		items = append(items, searchindex.Item{
			Title:   fmt.Sprintf("Doc %d", i),
			Content: "shared keyword",
			URL:     fmt.Sprintf("/%d", i),
		})
	}
	// One stronger match at the end should move to the front.
	items = append(items, searchindex.Item{Title: "Keyword", Content: "x", URL: "/best"})

	results := Search("keyword", items)
	if len(results) != MaxResults {
		t.Fatalf("got %d results, want %d", len(results), MaxResults)
	}
	if results[0].URL != "/best" {
		t.Errorf("first = %s, want /best", results[0].URL)
	}
	for i := 1; i < len(results); i++ {
		want := fmt.Sprintf("/%d", i-1)
		if results[i].URL != want {
			t.Errorf("results[%d] = %s, want %s (ties keep input order)", i, results[i].URL, want)
		}
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted descending at %d", i)
		}
	}
}

func TestSearchNLimit(t *testing.T) {
	var items []searchindex.Item
	for i := 0; i < 25; i++ {
		items = append(items, searchindex.Item{Title: "same", Content: "same", URL: fmt.Sprintf("/%d", i)})
	}
	tests := []struct {
		limit int
		want  int
	}{
		{0, MaxResults},
		{-3, MaxResults},
		{4, 4},
		{MaxResults, MaxResults},
		{25, MaxResults},
		{1000, MaxResults},
	}
	for _, tt := range tests {
		if got := len(SearchN("same", items, tt.limit)); got != tt.want {
			t.Errorf("SearchN limit %d returned %d, want %d", tt.limit, got, tt.want)
		}
	}
}

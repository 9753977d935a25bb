package search

import (
	"regexp"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

// Marker is the pair of strings placed around a highlighted match.
type Marker struct {
	Open  string
	Close string
}

// HTMLMarker wraps matches in the site's highlight span.
var HTMLMarker = Marker{Open: `<span class="search-highlight">`, Close: `</span>`}

// ResultView is one rendered result.
type ResultView struct {
	Index        int                  `json:"index"`
	Title        string               `json:"title"`
	Excerpt      string               `json:"excerpt"`
	Type         searchindex.ItemType `json:"type"`
	TypeLabel    string               `json:"type_label"`
	URL          string               `json:"url"`
	Score        float64              `json:"score"`
	MatchedWords int                  `json:"matched_words"`
}

// Display is the display model for one search pass. Empty is set when the
// pass produced no results and the "No results found" message applies.
type Display struct {
	Query   string       `json:"query"`
	Results []ResultView `json:"results"`
	Empty   bool         `json:"empty"`
}

// NoResultsText is shown when a pass matched nothing.
const NoResultsText = "No results found"

var typeLabels = map[searchindex.ItemType]string{
	searchindex.TypePost:             "Blog Post",
	searchindex.TypePage:             "Documentation",
	searchindex.TypeComponent:        "Component",
	searchindex.TypeUnityIntegration: "Unity Integration",
}

// TypeLabel returns the human-readable label for an item type.
func TypeLabel(t searchindex.ItemType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return "Page"
}

// Highlight wraps every case-insensitive occurrence of each token in m.
// Tokens are applied one after another over the already-marked text, so a
// later token can match inside markup inserted for an earlier one.
func Highlight(text string, tokens []string, m Marker) string {
	if text == "" {
		return ""
	}
	out := text
	for _, tok := range tokens {
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(tok))
		if err != nil {
			continue
		}
		out = re.ReplaceAllStringFunc(out, func(match string) string {
			return m.Open + match + m.Close
		})
	}
	return out
}

// Render builds the display model for results of query.
func Render(results []ScoredResult, query string, m Marker) Display {
	tokens := Tokenize(query)
	d := Display{
		Query:   query,
		Results: make([]ResultView, 0, len(results)),
		Empty:   len(results) == 0,
	}
	for i, r := range results {
		d.Results = append(d.Results, ResultView{
			Index:        i,
			Title:        Highlight(r.Title, tokens, m),
			Excerpt:      Highlight(r.Excerpt, tokens, m),
			Type:         r.Type,
			TypeLabel:    TypeLabel(r.Type),
			URL:          r.URL,
			Score:        r.Score,
			MatchedWords: r.MatchedWords,
		})
	}
	return d
}

// PlainMarker leaves matches unmarked; useful for text output.
var PlainMarker = Marker{}

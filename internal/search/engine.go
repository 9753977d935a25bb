package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

const (
	// MaxResults caps the ranked result list.
	MaxResults = 10
	// MinQueryLength is the trimmed query length (in characters) below which
	// no search runs and the result panel is hidden.
	MinQueryLength = 2
)

// Field weights.
const (
	titleWeight      = 10
	exactTitleBonus  = 20
	contentWeight    = 1
	excerptWeight    = 3
	minTokenRuneSize = 2
)

// ScoredResult is an item with its scaled score and the raw tally of field
// checks that matched.
type ScoredResult struct {
	searchindex.Item
	Score        float64 `json:"score"`
	MatchedWords int     `json:"matched_words"`
}

// Tokenize lower-cases the query, splits it on whitespace runs and drops
// tokens shorter than two characters.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenRuneSize {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// QueryTooShort reports whether the trimmed query is below MinQueryLength.
func QueryTooShort(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) < MinQueryLength
}

// Search scores every item against the query and returns at most MaxResults
// results ordered by descending score. Matching is plain substring
// containment, so "cat" matches "category".
func Search(query string, items []searchindex.Item) []ScoredResult {
	return SearchN(query, items, MaxResults)
}

// SearchN is Search with a caller-chosen cap. The cap never exceeds
// MaxResults; limit <= 0 means MaxResults.
func SearchN(query string, items []searchindex.Item, limit int) []ScoredResult {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []ScoredResult{}
	}

	results := make([]ScoredResult, 0)
	for _, item := range items {
		score, matched := scoreItem(item, tokens)
		if matched == 0 {
			continue
		}
		results = append(results, ScoredResult{
			Item:         item,
			Score:        score * (float64(matched) / float64(len(tokens))),
			MatchedWords: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// scoreItem returns the unscaled score and the number of matching field
// checks. A token found in title, content and excerpt counts three times.
func scoreItem(item searchindex.Item, tokens []string) (float64, int) {
	title := strings.ToLower(item.Title)
	content := strings.ToLower(item.Content)
	excerpt := strings.ToLower(item.Excerpt)

	score := 0
	matched := 0
	for _, tok := range tokens {
		if strings.Contains(title, tok) {
			score += titleWeight
			matched++
			if title == tok {
				score += exactTitleBonus
			}
		}
		if strings.Contains(content, tok) {
			score += contentWeight
			matched++
		}
		if strings.Contains(excerpt, tok) {
			score += excerptWeight
			matched++
		}
	}
	return float64(score), matched
}

package searchindex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Loader produces the flattened item list. Implementations perform a single
// attempt: there is no retry and no caching across calls.
type Loader interface {
	Load(ctx context.Context) ([]Item, error)
}

// StatusError is returned when the search document request gets a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
}

// NewLoader picks an HTTPLoader for http(s) URLs and a FileLoader otherwise.
func NewLoader(source string) Loader {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return &HTTPLoader{URL: source}
	}
	return &FileLoader{Path: source}
}

// HTTPLoader fetches search.json with one GET request.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

func (l *HTTPLoader) Load(ctx context.Context) ([]Item, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", l.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: l.URL, StatusCode: resp.StatusCode}
	}

	doc, err := Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return Flatten(doc), nil
}

// FileLoader reads a search.json file written by the site builder.
type FileLoader struct {
	Path string
}

func (l *FileLoader) Load(_ context.Context) ([]Item, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, err
	}
	return Flatten(doc), nil
}

// Decode parses a search document. A missing collection key decodes as an
// empty collection.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parsing search index: %w", err)
	}
	return doc, nil
}

// Flatten tags each raw item with its collection type and concatenates the
// collections in the order of Types. Items with an empty title or content
// are dropped.
func Flatten(doc Document) []Item {
	var items []Item
	for _, t := range Types {
		for _, raw := range doc.Collection(t) {
			if raw.Title == "" || raw.Content == "" {
				continue
			}
			items = append(items, Item{
				Title:   raw.Title,
				Content: raw.Content,
				Excerpt: raw.Excerpt,
				URL:     raw.URL,
				Type:    t,
			})
		}
	}
	return items
}

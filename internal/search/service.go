package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

// Service answers queries against an item list loaded once. If loading
// fails the service stays inert and every query returns nothing.
type Service struct {
	mu      sync.RWMutex
	items   []searchindex.Item
	ready   bool
	loadErr error
}

// NewService returns a ready service over items.
func NewService(items []searchindex.Item) *Service {
	return &Service{items: items, ready: true}
}

// LoadService runs loader once. A failure is logged and yields an inert
// service rather than an error.
func LoadService(ctx context.Context, loader searchindex.Loader) *Service {
	s := &Service{}
	items, err := loader.Load(ctx)
	if err != nil {
		slog.Error("failed to initialize search", "error", err)
		s.loadErr = err
		return s
	}
	s.items = items
	s.ready = true
	return s
}

// Ready reports whether the item list loaded.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Err returns the load failure, if any.
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Items returns the loaded items. The slice must not be modified.
func (s *Service) Items() []searchindex.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Query runs a search pass. ok is false when no pass ran: the service is
// inert or the query is shorter than MinQueryLength.
func (s *Service) Query(query string, m Marker) (Display, bool) {
	if !s.Ready() || QueryTooShort(query) {
		return Display{}, false
	}
	results := Search(query, s.Items())
	return Render(results, query, m), true
}

// Stats summarizes the loaded index.
type Stats struct {
	Ready  bool                         `json:"ready"`
	Total  int                          `json:"total"`
	ByType map[searchindex.ItemType]int `json:"by_type"`
}

// Stats returns item counts per type.
func (s *Service) Stats() Stats {
	items := s.Items()
	return Stats{
		Ready:  s.Ready(),
		Total:  len(items),
		ByType: searchindex.CountByType(items),
	}
}

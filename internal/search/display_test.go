package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

func TestHighlight(t *testing.T) {
	m := Marker{Open: "[", Close: "]"}
	tests := []struct {
		text   string
		tokens []string
		want   string
	}{
		{"Setup Guide", []string{"setup"}, "[Setup] Guide"},
		{"Setup Guide", []string{"missing"}, "Setup Guide"},
		{"banana", []string{"an"}, "b[an][an]a"},
		{"C++ and c++", []string{"c++"}, "[C++] and [c++]"},
		{"Setup Guide", []string{"setup", "guide"}, "[Setup] [Guide]"},
		{"", []string{"setup"}, ""},
	}
	for _, tt := range tests {
		if got := Highlight(tt.text, tt.tokens, m); got != tt.want {
			t.Errorf("Highlight(%q, %v) = %q, want %q", tt.text, tt.tokens, got, tt.want)
		}
	}
}

func TestHighlightSequentialOverlap(t *testing.T) {
	// The second token matches inside the markup inserted for the first.
	got := Highlight("setup", []string{"setup", "span"}, HTMLMarker)
	if n := strings.Count(got, "search-highlight"); n != 3 {
		t.Errorf("expected nested markup with 3 markers, got %d in %q", n, got)
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		typ  searchindex.ItemType
		want string
	}{
		{searchindex.TypePost, "Blog Post"},
		{searchindex.TypePage, "Documentation"},
		{searchindex.TypeComponent, "Component"},
		{searchindex.TypeUnityIntegration, "Unity Integration"},
		{"", "Page"},
		{"changelog", "Page"},
	}
	for _, tt := range tests {
		if got := TypeLabel(tt.typ); got != tt.want {
			t.Errorf("TypeLabel(%q) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	results := []ScoredResult{
		{Item: searchindex.Item{Title: "Setup Guide", Excerpt: "how to setup", URL: "/a", Type: searchindex.TypePage}, Score: 10, MatchedWords: 1},
		{Item: searchindex.Item{Title: "FAQ", URL: "/b", Type: searchindex.TypePost}, Score: 1, MatchedWords: 1},
	}

	d := Render(results, "setup", Marker{Open: "<", Close: ">"})
	if d.Empty {
		t.Fatal("expected non-empty display")
	}
	if len(d.Results) != 2 {
		t.Fatalf("got %d views, want 2", len(d.Results))
	}
	if d.Results[0].Title != "<Setup> Guide" {
		t.Errorf("title = %q", d.Results[0].Title)
	}
	if d.Results[0].Excerpt != "how to <setup>" {
		t.Errorf("excerpt = %q", d.Results[0].Excerpt)
	}
	if d.Results[0].TypeLabel != "Documentation" || d.Results[1].TypeLabel != "Blog Post" {
		t.Errorf("labels = %q, %q", d.Results[0].TypeLabel, d.Results[1].TypeLabel)
	}
	if d.Results[1].Index != 1 || d.Results[1].Excerpt != "" {
		t.Errorf("second view = %+v", d.Results[1])
	}
}

func TestRenderEmpty(t *testing.T) {
	d := Render(nil, "nothing", HTMLMarker)
	if !d.Empty || len(d.Results) != 0 {
		t.Errorf("expected empty display, got %+v", d)
	}
}

func TestWriteHTML(t *testing.T) {
	results := []ScoredResult{
		{Item: searchindex.Item{Title: "Setup Guide", Excerpt: "start here", URL: "/pages/setup.html", Type: searchindex.TypePage}, Score: 10, MatchedWords: 1},
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, Render(results, "setup", HTMLMarker)); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`class="search-result-item" data-index="0" data-url="/pages/setup.html"`,
		`<span class="search-highlight">Setup</span> Guide`,
		`Documentation • /pages/setup.html`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteHTMLNoResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, Render(nil, "zzz", HTMLMarker)); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if !strings.Contains(buf.String(), `<div class="no-results">No results found</div>`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func newTestRouter(svc *Service) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, svc)
	return r
}

func TestSearchRoute(t *testing.T) {
	svc := NewService([]searchindex.Item{
		{Title: "Setup Guide", Content: "install steps", URL: "/a", Type: searchindex.TypePage},
	})

	req := httptest.NewRequest("GET", "/api/search?q=setup", nil)
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Visible bool         `json:"visible"`
		Results []ResultView `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Visible || len(body.Results) != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if body.Results[0].TypeLabel != "Documentation" {
		t.Errorf("type label = %q", body.Results[0].TypeLabel)
	}
}

func TestSearchRouteShortQuery(t *testing.T) {
	svc := NewService([]searchindex.Item{{Title: "a", Content: "a", URL: "/a"}})

	req := httptest.NewRequest("GET", "/api/search?q=a", nil)
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, req)

	var body struct {
		Visible bool `json:"visible"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Visible {
		t.Error("short query should not produce a visible panel")
	}
}

func TestSearchHTMLRoute(t *testing.T) {
	svc := NewService([]searchindex.Item{{Title: "Setup Guide", Content: "x", URL: "/a"}})

	req := httptest.NewRequest("GET", "/api/search/html?q=zebra", nil)
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No results found") {
		t.Errorf("expected no-results fragment, got %q", w.Body.String())
	}

	req = httptest.NewRequest("GET", "/api/search/html?q=z", nil)
	w = httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("short query: expected 204, got %d", w.Code)
	}
}

type failingLoader struct{}

func (failingLoader) Load(_ context.Context) ([]searchindex.Item, error) {
	return nil, errors.New("network down")
}

func TestInertServiceNeverAnswers(t *testing.T) {
	svc := LoadService(context.Background(), failingLoader{})
	if svc.Ready() {
		t.Fatal("service should be inert after a failed load")
	}
	if svc.Err() == nil {
		t.Error("expected load error to be recorded")
	}
	if _, ok := svc.Query("anything", HTMLMarker); ok {
		t.Error("inert service should not run a search pass")
	}
	if st := svc.Stats(); st.Ready || st.Total != 0 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

package searchindex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `{
  "posts": [{"title": "Release notes", "content": "new server", "url": "/posts/release.html"}],
  "pages": [
    {"title": "Setup Guide", "content": "install steps", "excerpt": "get going", "url": "/pages/setup.html"},
    {"title": "", "content": "orphan", "url": "/pages/orphan.html"}
  ],
  "components": [{"title": "LLM", "content": "", "url": "/components/llm.html"}],
  "unity_integrations": [{"title": "Unity Chat", "content": "chat sample", "url": "/unity/chat.html"}]
}`

func TestFlattenOrderAndFilter(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	items := Flatten(doc)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	want := []struct {
		title string
		typ   ItemType
	}{
		{"Release notes", TypePost},
		{"Setup Guide", TypePage},
		{"Unity Chat", TypeUnityIntegration},
	}
	for i, w := range want {
		if items[i].Title != w.title || items[i].Type != w.typ {
			t.Errorf("items[%d] = %q/%s, want %q/%s", i, items[i].Title, items[i].Type, w.title, w.typ)
		}
	}
	if items[1].Excerpt != "get going" {
		t.Errorf("excerpt = %q, want %q", items[1].Excerpt, "get going")
	}
}

func TestDecodeMissingCollections(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"pages": [{"title": "A", "content": "b", "url": "/a"}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if items := Flatten(doc); len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader(`<html>not json</html>`)); err == nil {
		t.Error("expected parse error")
	}
}

func TestHTTPLoader(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	items, err := NewLoader(srv.URL + "/search.json").Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
}

func TestHTTPLoaderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := (&HTTPLoader{URL: srv.URL}).Load(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", statusErr.StatusCode)
	}
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(path)
	if _, ok := loader.(*FileLoader); !ok {
		t.Fatalf("NewLoader(%q) = %T, want *FileLoader", path, loader)
	}
	items, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
}

func TestFileLoaderMissing(t *testing.T) {
	_, err := (&FileLoader{Path: filepath.Join(t.TempDir(), "nope.json")}).Load(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCountByType(t *testing.T) {
	counts := CountByType([]Item{{Type: TypePage}, {Type: TypePage}, {Type: TypePost}})
	if counts[TypePage] != 2 || counts[TypePost] != 1 || counts[TypeComponent] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if _, ok := counts[TypeUnityIntegration]; !ok {
		t.Error("expected every known type in counts")
	}
}

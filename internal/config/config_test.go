package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "_site" {
		t.Errorf("expected default output_dir %q, got %q", "_site", cfg.OutputDir)
	}
	if cfg.DefaultTheme != "light" {
		t.Errorf("expected default theme light, got %q", cfg.DefaultTheme)
	}
	if cfg.Debounce() != 300*time.Millisecond {
		t.Errorf("expected 300ms debounce, got %v", cfg.Debounce())
	}
	if len(cfg.Collections) != 4 {
		t.Errorf("expected 4 collections, got %d", len(cfg.Collections))
	}
}

func TestDefaultConfigCollectionsNotShared(t *testing.T) {
	a := DefaultConfig()
	a.Collections["post"] = "articles"
	if DefaultConfig().Collections["post"] != "posts" {
		t.Error("mutating one config leaked into the defaults")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.docsite.yml")

	original := DefaultConfig()
	original.ProjectName = "Velesio"
	original.BaseURL = "https://docs.example.com/velesio"
	original.Include = []string{"**/*.md", "**/*.markdown"}
	original.Server.Port = 8080
	original.Search.DebounceMS = 150

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ProjectName != original.ProjectName {
		t.Errorf("project_name: got %q, want %q", loaded.ProjectName, original.ProjectName)
	}
	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if loaded.Server.Port != 8080 {
		t.Errorf("server.port: got %d, want 8080", loaded.Server.Port)
	}
	if loaded.Search.DebounceMS != 150 {
		t.Errorf("search.debounce_ms: got %d, want 150", loaded.Search.DebounceMS)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Errorf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
	for i, v := range loaded.Include {
		if v != original.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.SourceDir != "docs" {
		t.Errorf("expected default source_dir, got %q", cfg.SourceDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DOCSITE_DEFAULT_THEME", "dark")
	t.Setenv("DOCSITE_SERVER__PORT", "9090")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultTheme != "dark" {
		t.Errorf("env override failed: got %q, want dark", loaded.DefaultTheme)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("nested env override failed: got %d, want 9090", loaded.Server.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty source dir", func(c *Config) { c.SourceDir = "" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"relative base url", func(c *Config) { c.BaseURL = "/docs" }, true},
		{"empty base url", func(c *Config) { c.BaseURL = "" }, false},
		{"bad theme", func(c *Config) { c.DefaultTheme = "sepia" }, true},
		{"unknown collection", func(c *Config) { c.Collections["recipe"] = "recipes" }, true},
		{"empty collection dir", func(c *Config) { c.Collections["post"] = "" }, true},
		{"bad glob", func(c *Config) { c.Exclude = []string{"[unclosed"} }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative debounce", func(c *Config) { c.Search.DebounceMS = -1 }, true},
		{"zero debounce", func(c *Config) { c.Search.DebounceMS = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearchIndexSource(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.SearchIndexSource(); got != filepath.Join("_site", "search.json") {
		t.Errorf("default source = %q", got)
	}
	cfg.SearchIndex = "https://example.com/search.json"
	if got := cfg.SearchIndexSource(); got != cfg.SearchIndex {
		t.Errorf("explicit source = %q", got)
	}
}

func TestBasePathAndPageURL(t *testing.T) {
	tests := []struct {
		base     string
		wantPath string
		rel      string
		wantURL  string
	}{
		{"http://localhost:4000", "/", "/docs/setup.html", "http://localhost:4000/docs/setup.html"},
		{"https://example.com/docs/", "/docs/", "posts/a.html", "https://example.com/docs/posts/a.html"},
		{"https://example.com/docs", "/docs/", "/docs/pages/faq.html", "https://example.com/docs/pages/faq.html"},
		{"https://example.com/docs", "/docs/", "https://other.org/x", "https://other.org/x"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.BaseURL = tt.base
		if got := cfg.BasePath(); got != tt.wantPath {
			t.Errorf("BasePath(%q) = %q, want %q", tt.base, got, tt.wantPath)
		}
		if got := cfg.PageURL(tt.rel); got != tt.wantURL {
			t.Errorf("PageURL(%q) = %q, want %q", tt.rel, got, tt.wantURL)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" a/** , ,b.md")
	if len(got) != 2 || got[0] != "a/**" || got[1] != "b.md" {
		t.Errorf("splitAndTrim = %q", got)
	}
}

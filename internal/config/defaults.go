package config

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".docsite.yml"

// DefaultCollections maps each search item type to its source subdirectory.
var DefaultCollections = map[string]string{
	"post":              "posts",
	"page":              "pages",
	"component":         "components",
	"unity_integration": "unity_integrations",
}

// DefaultExcludes are glob patterns skipped when collecting pages.
var DefaultExcludes = []string{
	"_drafts/**",
	"node_modules/**",
	".git/**",
	"**/README.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	collections := make(map[string]string, len(DefaultCollections))
	for k, v := range DefaultCollections {
		collections[k] = v
	}
	return &Config{
		ProjectName:  "Documentation",
		SourceDir:    "docs",
		OutputDir:    "_site",
		BaseURL:      "http://localhost:4000",
		DataDir:      ".docsite",
		Include:      []string{"**/*.md"},
		Exclude:      append([]string(nil), DefaultExcludes...),
		DefaultTheme: "light",
		Collections:  collections,
		Server: ServerConfig{
			Port: 4000,
		},
		Search: SearchConfig{
			DebounceMS: 300,
		},
	}
}

// SearchIndexSource returns where the search document is loaded from:
// the configured URL or path, or search.json inside the output directory.
func (c *Config) SearchIndexSource() string {
	if c.SearchIndex != "" {
		return c.SearchIndex
	}
	return filepath.Join(c.OutputDir, "search.json")
}

// DBPath returns the preferences database location.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "docsite.db")
}

// Debounce returns the search debounce delay.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// BasePath returns the path component of base_url with a trailing slash,
// e.g. "/docs/" for https://example.com/docs.
func (c *Config) BasePath() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return strings.TrimSuffix(u.Path, "/") + "/"
}

// PageURL resolves a site URL from the search document against base_url.
// Absolute URLs are returned unchanged.
func (c *Config) PageURL(rel string) string {
	ref, err := url.Parse(rel)
	if err != nil {
		return rel
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return rel
	}
	base.Path = c.BasePath()
	return base.ResolveReference(ref).String()
}

package walker

import (
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SkipDirs are directory names never descended into: build output, caches
// and vendored dependencies.
var SkipDirs = []string{
	"node_modules",
	"vendor",
	"_site",
	".docsite",
	".sass-cache",
	".jekyll-cache",
}

func skipDir(name string) bool {
	if isHidden(name) {
		return true
	}
	for _, s := range SkipDirs {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

// MatchesInclude reports whether relPath matches one of patterns. An empty
// list includes everything.
func MatchesInclude(relPath string, patterns []string) bool {
	return len(patterns) == 0 || matchesAny(relPath, patterns)
}

// MatchesExclude reports whether relPath matches one of patterns.
func MatchesExclude(relPath string, patterns []string) bool {
	return len(patterns) > 0 && matchesAny(relPath, patterns)
}

// matchesAny tries each pattern against the whole path and against its
// base name, so "*.md" matches at any depth.
func matchesAny(relPath string, patterns []string) bool {
	base := path.Base(relPath)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}

// ignoreRule is one .gitignore line.
type ignoreRule struct {
	pattern  string
	dirOnly  bool
	anchored bool
	negate   bool
}

type ignoreRules []ignoreRule

// loadIgnoreRules parses a .gitignore file. A missing file yields no rules.
func loadIgnoreRules(file string) ignoreRules {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil
	}

	var rules ignoreRules
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var r ignoreRule
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		r.anchored = strings.Contains(line, "/")
		r.pattern = strings.TrimPrefix(line, "/")
		if r.pattern != "" {
			rules = append(rules, r)
		}
	}
	return rules
}

// match reports whether rel is ignored. Later rules override earlier ones,
// and a "!" rule re-includes a path.
func (rules ignoreRules) match(rel string, isDir bool) bool {
	ignored := false
	for _, r := range rules {
		if r.dirOnly && !isDir {
			continue
		}
		target := rel
		if !r.anchored {
			target = path.Base(rel)
		}
		if ok, _ := doublestar.Match(r.pattern, target); ok {
			ignored = !r.negate
		}
	}
	return ignored
}

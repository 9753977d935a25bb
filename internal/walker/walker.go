// Package walker collects the markdown sources of a site.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultMaxFileSize is the largest source read (1 MB).
const DefaultMaxFileSize int64 = 1 << 20

// Source is one file found under the site root.
type Source struct {
	Path    string // absolute
	RelPath string // slash-separated, relative to the root
	Size    int64
	ModTime time.Time
}

// Options controls Walk.
type Options struct {
	RootDir     string
	Include     []string // doublestar globs; empty includes everything
	Exclude     []string // doublestar globs
	MaxFileSize int64    // 0 means DefaultMaxFileSize
}

// Walk returns the sources under opts.RootDir in lexical order. Hidden
// entries, the directories in SkipDirs and paths ignored by the root
// .gitignore are never returned.
func Walk(opts Options) ([]Source, error) {
	root, err := filepath.Abs(opts.RootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving source root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s is not a directory", root)
	}

	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	ignore := loadIgnoreRules(filepath.Join(root, ".gitignore"))

	var sources []Source
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries are skipped.
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if skipDir(d.Name()) || ignore.match(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || isHidden(d.Name()) || ignore.match(rel, false) {
			return nil
		}
		if !MatchesInclude(rel, opts.Include) || MatchesExclude(rel, opts.Exclude) {
			return nil
		}

		fi, err := d.Info()
		if err != nil || fi.Size() > maxSize {
			return nil
		}
		sources = append(sources, Source{
			Path:    path,
			RelPath: rel,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return sources, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

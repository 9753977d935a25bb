package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func relPaths(files []Source) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestWalk_IncludeExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Home")
	writeFile(t, root, "posts/2024-01-01-hello.md", "# Hello")
	writeFile(t, root, "posts/draft.md", "# Draft")
	writeFile(t, root, "assets/logo.png", "png")
	writeFile(t, root, "node_modules/pkg/README.md", "# Pkg")
	writeFile(t, root, "_site/index.md", "# Built")

	files, err := Walk(Options{
		RootDir: root,
		Include: []string{"**/*.md"},
		Exclude: []string{"posts/draft.md"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	want := []string{"index.md", "posts/2024-01-01-hello.md"}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "# comment\nscratch/\nsecret.md\n")
	writeFile(t, root, "index.md", "# Home")
	writeFile(t, root, "scratch/notes.md", "notes")
	writeFile(t, root, "pages/secret.md", "secret")

	files, err := Walk(Options{RootDir: root, Include: []string{"**/*.md"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	got := relPaths(files)
	if len(got) != 1 || got[0] != "index.md" {
		t.Errorf("Walk() = %v, want [index.md]", got)
	}
}

func TestWalk_HiddenEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Home")
	writeFile(t, root, ".notes.md", "hidden file")
	writeFile(t, root, ".github/README.md", "hidden dir")

	files, err := Walk(Options{RootDir: root})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	got := relPaths(files)
	if len(got) != 1 || got[0] != "index.md" {
		t.Errorf("Walk() = %v, want [index.md]", got)
	}
}

func TestWalk_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Home")
	if _, err := Walk(Options{RootDir: filepath.Join(root, "index.md")}); err == nil {
		t.Error("expected error when root is a file")
	}
}

func TestIgnoreRules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "*.tmp.md\n!keep.tmp.md\n/build/\ndocs/**/private.md\n")
	rules := loadIgnoreRules(filepath.Join(root, ".gitignore"))

	tests := []struct {
		rel   string
		isDir bool
		want  bool
	}{
		{"a.tmp.md", false, true},
		{"pages/b.tmp.md", false, true},
		{"keep.tmp.md", false, false},
		{"build", true, true},
		{"build", false, false},
		{"docs/x/y/private.md", false, true},
		{"pages/private.md", false, false},
		{"index.md", false, false},
	}
	for _, tt := range tests {
		if got := rules.match(tt.rel, tt.isDir); got != tt.want {
			t.Errorf("match(%q, dir=%v) = %v, want %v", tt.rel, tt.isDir, got, tt.want)
		}
	}

	if loadIgnoreRules(filepath.Join(root, "missing")) != nil {
		t.Error("missing .gitignore should yield no rules")
	}
}

func TestWalk_MaxFileSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "small.md", "ok")
	writeFile(t, root, "big.md", "0123456789")

	files, err := Walk(Options{RootDir: root, MaxFileSize: 5})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	got := relPaths(files)
	if len(got) != 1 || got[0] != "small.md" {
		t.Errorf("Walk() = %v, want [small.md]", got)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	if _, err := Walk(Options{RootDir: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestMatchesFilters(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		include  bool
		exclude  bool
	}{
		{"posts/a.md", nil, true, false},
		{"posts/a.md", []string{"**/*.md"}, true, true},
		{"posts/a.md", []string{"*.md"}, true, true},
		{"posts/a.txt", []string{"**/*.md"}, false, false},
		{"_drafts/x.md", []string{"_drafts/**"}, true, true},
	}
	for _, tt := range tests {
		if got := MatchesInclude(tt.path, tt.patterns); got != tt.include {
			t.Errorf("MatchesInclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.include)
		}
		if got := MatchesExclude(tt.path, tt.patterns); got != tt.exclude {
			t.Errorf("MatchesExclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.exclude)
		}
	}
}

// testdataDir returns the absolute path to the testdata/sample_site directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	abs, err := filepath.Abs(filepath.Join("..", "..", "testdata", "sample_site"))
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); err != nil {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

func TestWalk_SampleSite(t *testing.T) {
	files, err := Walk(Options{
		RootDir: testdataDir(t),
		Include: []string{"**/*.md"},
		Exclude: []string{"_drafts/**"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	seen := map[string]bool{}
	for _, f := range files {
		seen[f.RelPath] = true
		if f.Size == 0 {
			t.Errorf("%s has zero size", f.RelPath)
		}
	}
	for _, want := range []string{
		"index.md",
		"pages/getting-started.md",
		"components/button.md",
		"unity_integrations/setup.md",
	} {
		if !seen[want] {
			t.Errorf("missing %s in %v", want, relPaths(files))
		}
	}
	if seen["_drafts/wip.md"] {
		t.Error("drafts should be excluded")
	}
}

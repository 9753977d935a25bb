package site

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
	"github.com/Velesio/velesio-aiserver/internal/toc"
	"github.com/Velesio/velesio-aiserver/internal/walker"
)

var titleParser = toc.NewMarkdown().Parser()

// FrontMatter holds the YAML header fields a page may set.
type FrontMatter struct {
	Title         string `yaml:"title"`
	Excerpt       string `yaml:"excerpt"`
	Permalink     string `yaml:"permalink"`
	SearchExclude bool   `yaml:"search_exclude"`
}

// Page is one markdown source file.
type Page struct {
	RelPath string
	Type    searchindex.ItemType
	Meta    FrontMatter
	Body    []byte
}

// Title returns the front matter title, the first # heading, or the file name.
func (p Page) Title() string {
	if p.Meta.Title != "" {
		return p.Meta.Title
	}
	return extractTitle(p.Body, p.RelPath)
}

// OutputPath returns the slash-separated path of the rendered page inside
// the output directory.
func (p Page) OutputPath() string {
	if p.Meta.Permalink != "" {
		out := strings.TrimPrefix(p.Meta.Permalink, "/")
		if out == "" || strings.HasSuffix(out, "/") {
			return out + "index.html"
		}
		if path.Ext(out) == "" {
			return out + ".html"
		}
		return out
	}
	return mdPathToHTML(p.RelPath)
}

// URL returns the page URL under basePath ("/" or "/docs/").
func (p Page) URL(basePath string) string {
	out := p.OutputPath()
	if strings.HasSuffix(out, "index.html") && p.Meta.Permalink != "" {
		out = strings.TrimSuffix(out, "index.html")
	}
	return basePath + out
}

// LoadPages walks srcDir and reads every matching markdown file.
// collections maps an item type to the top-level directory holding it;
// files outside every collection directory are pages.
func LoadPages(srcDir string, include, exclude []string, collections map[string]string) ([]Page, error) {
	files, err := walker.Walk(walker.Options{
		RootDir: srcDir,
		Include: include,
		Exclude: exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", srcDir, err)
	}

	dirTypes := make(map[string]searchindex.ItemType, len(collections))
	for typ, dir := range collections {
		dirTypes[strings.Trim(dir, "/")] = searchindex.ItemType(typ)
	}

	var pages []Page
	for _, f := range files {
		if !strings.HasSuffix(f.RelPath, ".md") {
			continue
		}
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
		}
		meta, body, err := parseFrontMatter(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.RelPath, err)
		}

		typ := searchindex.TypePage
		if dir, _, ok := strings.Cut(f.RelPath, "/"); ok {
			if t, found := dirTypes[dir]; found {
				typ = t
			}
		}

		pages = append(pages, Page{
			RelPath: f.RelPath,
			Type:    typ,
			Meta:    meta,
			Body:    body,
		})
	}

	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].RelPath < pages[j].RelPath
	})
	return pages, nil
}

const frontMatterDelim = "---\n"

// parseFrontMatter splits an optional leading YAML block delimited by
// "---" lines from the markdown body.
func parseFrontMatter(data []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	normalized := bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte(frontMatterDelim)) {
		return meta, data, nil
	}

	rest := normalized[len(frontMatterDelim):]
	var header, body []byte
	switch end := bytes.Index(rest, []byte("\n"+frontMatterDelim)); {
	case bytes.HasPrefix(rest, []byte(frontMatterDelim)):
		body = rest[len(frontMatterDelim):]
	case end >= 0:
		header = rest[:end]
		body = rest[end+1+len(frontMatterDelim):]
	case bytes.HasSuffix(rest, []byte("\n---")):
		header = rest[:len(rest)-len("\n---")]
	default:
		// Unterminated block: treat the whole file as markdown.
		return meta, data, nil
	}

	if err := yaml.Unmarshal(header, &meta); err != nil {
		return meta, nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return meta, body, nil
}

// extractTitle returns the text of the first level-1 heading, or the file
// name when there is none. Code blocks are never searched.
func extractTitle(source []byte, relPath string) string {
	doc := titleParser.Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level == 1 {
			title = inlineText(h, source)
			return ast.WalkStop, nil
		}
		return ast.WalkSkipChildren, nil
	})
	if title != "" {
		return title
	}
	return strings.TrimSuffix(path.Base(relPath), ".md")
}

// mdPathToHTML converts a markdown path to its HTML equivalent.
func mdPathToHTML(p string) string {
	if strings.HasSuffix(p, ".md") {
		return strings.TrimSuffix(p, ".md") + ".html"
	}
	return p
}

package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/Velesio/velesio-aiserver/internal/config"
	"github.com/Velesio/velesio-aiserver/internal/progress"
	"github.com/Velesio/velesio-aiserver/internal/searchindex"
	"github.com/Velesio/velesio-aiserver/internal/toc"
)

// SearchFile is the name of the search document in the output directory.
const SearchFile = "search.json"

// Generator converts a markdown source tree into a static HTML site.
type Generator struct {
	cfg      *config.Config
	reporter progress.Reporter
	md       goldmark.Markdown
}

// NewGenerator creates a Generator for cfg. A nil reporter discards progress.
func NewGenerator(cfg *config.Config, reporter progress.Reporter) *Generator {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	// Heading ids must match the ones the TOC links to, so the renderer
	// shares the TOC package's parser setup.
	md := toc.NewMarkdown(
		goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Generator{cfg: cfg, reporter: reporter, md: md}
}

// Result summarizes a build.
type Result struct {
	Pages      int
	SearchFile string
	Counts     map[searchindex.ItemType]int
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title       string
	ProjectName string
	Content     template.HTML
	TOC         template.HTML
	Sidebar     template.HTML
	BasePath    string
	Theme       string
	DebounceMS  int
}

// Build renders every page, writes the static assets and the search document.
func (g *Generator) Build(ctx context.Context) (*Result, error) {
	pages, err := LoadPages(g.cfg.SourceDir, g.cfg.Include, g.cfg.Exclude, g.cfg.Collections)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", g.cfg.SourceDir)
	}

	basePath := g.cfg.BasePath()

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}

	doc := BuildSearchDocument(pages, g.md.Parser(), basePath)
	searchPath := filepath.Join(g.cfg.OutputDir, SearchFile)
	if err := WriteSearchDocument(doc, searchPath); err != nil {
		return nil, fmt.Errorf("writing search document: %w", err)
	}

	if err := os.WriteFile(filepath.Join(g.cfg.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.cfg.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return nil, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	sidebar := BuildSidebar(pages, g.cfg.Collections, basePath)

	g.reporter.Start(len(pages))
	defer g.reporter.Finish()

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.renderPage(tmpl, sidebar, page, basePath); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", page.RelPath, err)
		}
		g.reporter.Update(i+1, page.RelPath)
	}

	items := searchindex.Flatten(doc)
	slog.Debug("site built", "pages", len(pages), "search_items", len(items), "output", g.cfg.OutputDir)

	return &Result{
		Pages:      len(pages),
		SearchFile: searchPath,
		Counts:     searchindex.CountByType(items),
	}, nil
}

// renderPage converts a single markdown page to an HTML file.
func (g *Generator) renderPage(tmpl *template.Template, sidebar []SidebarSection, page Page, basePath string) error {
	var htmlBuf bytes.Buffer
	if err := g.md.Convert(page.Body, &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	entries := toc.ExtractWith(g.md.Parser(), page.Body)

	outRel := page.OutputPath()
	outPath := filepath.Join(g.cfg.OutputDir, filepath.FromSlash(outRel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	data := pageData{
		Title:       page.Title(),
		ProjectName: g.cfg.ProjectName,
		Content:     template.HTML(rewriteMDLinks(htmlBuf.String())),
		TOC:         template.HTML(toc.RenderHTML(entries)),
		Sidebar:     template.HTML(SidebarHTML(sidebar, page.URL(basePath), basePath)),
		BasePath:    basePath,
		Theme:       g.cfg.DefaultTheme,
		DebounceMS:  g.cfg.Search.DebounceMS,
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// rewriteMDLinks changes .md links in HTML content to .html links.
func rewriteMDLinks(content string) string {
	result := strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(result, `.md#`, `.html#`)
}

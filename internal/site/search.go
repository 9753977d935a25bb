package site

import (
	"encoding/json"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

// MaxContentLength caps the plain text stored per search item, in characters.
const MaxContentLength = 2000

// MaxExcerptLength caps excerpts derived from a page's first paragraph.
const MaxExcerptLength = 200

// BuildSearchDocument converts pages into the four-collection search document.
// Pages marked search_exclude are left out.
func BuildSearchDocument(pages []Page, p parser.Parser, basePath string) searchindex.Document {
	doc := searchindex.Document{
		Posts:             []searchindex.RawItem{},
		Pages:             []searchindex.RawItem{},
		Components:        []searchindex.RawItem{},
		UnityIntegrations: []searchindex.RawItem{},
	}
	for _, page := range pages {
		if page.Meta.SearchExclude {
			continue
		}
		plain, firstPara := plainText(p, page.Body)

		excerpt := page.Meta.Excerpt
		if excerpt == "" && page.Type == searchindex.TypePost {
			excerpt = truncate(firstPara, MaxExcerptLength)
		}

		doc.Add(page.Type, searchindex.RawItem{
			Title:   page.Title(),
			Content: truncate(plain, MaxContentLength),
			Excerpt: excerpt,
			URL:     page.URL(basePath),
		})
	}
	return doc
}

// WriteSearchDocument writes the search document as JSON to the given path.
func WriteSearchDocument(doc searchindex.Document, outputPath string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// plainText renders markdown source as whitespace-collapsed text and also
// returns the text of its first paragraph.
func plainText(p parser.Parser, source []byte) (string, string) {
	doc := p.Parse(text.NewReader(source))

	var all []string
	var first string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			s := inlineText(node, source)
			if s != "" {
				all = append(all, s)
				if first == "" {
					if _, ok := node.(*ast.Paragraph); ok {
						first = s
					}
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				all = append(all, string(seg.Value(source)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(strings.Join(all, " ")), " "), first
}

func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					b.WriteByte(' ')
				}
			case *ast.String:
				b.Write(t.Value)
			case *ast.RawHTML:
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

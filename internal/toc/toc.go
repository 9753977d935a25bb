// Package toc builds a table of contents from the headings of a markdown page.
package toc

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// MaxLevel is the deepest heading level included.
const MaxLevel = 4

// Entry is one linked heading.
type Entry struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// NewMarkdown returns a goldmark instance whose heading ids match the ones
// Extract reports.
func NewMarkdown(extra ...goldmark.Option) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	return goldmark.New(append(opts, extra...)...)
}

var defaultMarkdown = NewMarkdown()

// Extract parses source and returns its TOC. A page with fewer than two
// h1-h4 headings has no TOC and nil is returned. Headings without an id
// count towards that threshold but are not listed.
func Extract(source []byte) []Entry {
	return ExtractWith(defaultMarkdown.Parser(), source)
}

// ExtractWith is Extract using a caller-supplied parser.
func ExtractWith(p parser.Parser, source []byte) []Entry {
	doc := p.Parse(text.NewReader(source))

	var headings int
	var entries []Entry
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level > MaxLevel {
			return ast.WalkSkipChildren, nil
		}
		headings++
		if id := headingID(h); id != "" {
			entries = append(entries, Entry{Level: h.Level, ID: id, Text: nodeText(h, source)})
		}
		return ast.WalkSkipChildren, nil
	})

	if headings <= 1 {
		return nil
	}
	return entries
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

// nodeText concatenates the literal text below n.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() {
					b.WriteByte(' ')
				}
			case *ast.String:
				b.Write(t.Value)
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// RenderHTML renders entries as a nav list. An empty TOC renders nothing.
func RenderHTML(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<nav class="toc"><ul>`)
	for _, e := range entries {
		fmt.Fprintf(&b, `<li class="toc-h%d"><a href="#%s">%s</a></li>`,
			e.Level, html.EscapeString(e.ID), html.EscapeString(e.Text))
	}
	b.WriteString(`</ul></nav>`)
	return b.String()
}

// RenderText renders entries as an indented outline.
func RenderText(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s- %s (#%s)\n", strings.Repeat("  ", e.Level-1), e.Text, e.ID)
	}
	return b.String()
}

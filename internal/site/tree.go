package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/Velesio/velesio-aiserver/internal/searchindex"
)

// SidebarLink is one page entry in the sidebar.
type SidebarLink struct {
	Title string
	URL   string
}

// SidebarSection groups the pages of one collection.
type SidebarSection struct {
	Type  searchindex.ItemType
	Title string
	Links []SidebarLink
}

// BuildSidebar groups pages by collection in collection order. The site
// index is excluded; it is reachable through the Home link. Empty
// collections are omitted.
func BuildSidebar(pages []Page, collections map[string]string, basePath string) []SidebarSection {
	byType := make(map[searchindex.ItemType][]SidebarLink)
	for _, p := range pages {
		if p.RelPath == "index.md" {
			continue
		}
		byType[p.Type] = append(byType[p.Type], SidebarLink{Title: p.Title(), URL: p.URL(basePath)})
	}

	var sections []SidebarSection
	for _, t := range searchindex.Types {
		links := byType[t]
		if len(links) == 0 {
			continue
		}
		name := collections[string(t)]
		if name == "" {
			name = string(t)
		}
		sections = append(sections, SidebarSection{Type: t, Title: formatDirName(name), Links: links})
	}
	return sections
}

// SidebarHTML renders sections as nested <ul><li> HTML, marking activeURL.
func SidebarHTML(sections []SidebarSection, activeURL, basePath string) string {
	var b strings.Builder

	homeActive := ""
	if activeURL == basePath+"index.html" {
		homeActive = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul><li class="file home-link"><a href="%sindex.html"%s>Home</a></li></ul>`+"\n", basePath, homeActive)

	for _, s := range sections {
		expanded := ""
		for _, l := range s.Links {
			if l.URL == activeURL {
				expanded = " expanded"
			}
		}
		fmt.Fprintf(&b, `<div class="sidebar-section%s" data-collection="%s"><span class="dir-toggle">%s</span>`+"\n<ul>\n",
			expanded, s.Type, html.EscapeString(s.Title))
		for _, l := range s.Links {
			activeClass := ""
			if l.URL == activeURL {
				activeClass = ` class="active"`
			}
			fmt.Fprintf(&b, `<li class="file"><a href="%s"%s>%s</a></li>`+"\n",
				html.EscapeString(l.URL), activeClass, html.EscapeString(l.Title))
		}
		b.WriteString("</ul></div>\n")
	}
	return b.String()
}

// formatDirName converts a directory name to a human-readable display name.
// Multi-word slugs are title-cased.
func formatDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

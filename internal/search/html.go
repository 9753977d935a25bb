package search

import (
	"html/template"
	"io"
)

// resultsTemplate mirrors the markup the site script expects inside
// #search-results. Title and excerpt already carry highlight spans.
const resultsTemplate = `{{if .Empty}}<div class="no-results">{{.NoResults}}</div>{{else}}{{range .Items}}
<div class="search-result-item" data-index="{{.Index}}" data-url="{{.URL}}">
  <div class="search-result-title">{{.Title}}</div>
  <div class="search-result-excerpt">{{.Excerpt}}</div>
  <div class="search-result-url">{{.TypeLabel}} • {{.URL}}</div>
</div>{{end}}
{{end}}`

var resultsTmpl = template.Must(template.New("results").Parse(resultsTemplate))

type htmlItem struct {
	Index     int
	Title     template.HTML
	Excerpt   template.HTML
	TypeLabel string
	URL       string
}

// WriteHTML renders the display model as the results-panel fragment.
func WriteHTML(w io.Writer, d Display) error {
	data := struct {
		Empty     bool
		NoResults string
		Items     []htmlItem
	}{
		Empty:     d.Empty,
		NoResults: NoResultsText,
	}
	for _, r := range d.Results {
		data.Items = append(data.Items, htmlItem{
			Index:     r.Index,
			Title:     template.HTML(r.Title),
			Excerpt:   template.HTML(r.Excerpt),
			TypeLabel: r.TypeLabel,
			URL:       r.URL,
		})
	}
	return resultsTmpl.Execute(w, data)
}

// Package renderer turns inventory views into markdown.
//
// Views are plain structs (see types.go) built from the travelpack package,
// and rendered through the text/templates embedded in templates/.
package renderer

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates = mustSub(templatesFS, "templates")

func mustSub(f fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// funcs are available in every template.
var funcs = template.FuncMap{
	"cell":   cell,
	"plural": plural,
}

// cell escapes a value for a markdown table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// plural returns "1 item", "2 items"...
func plural(n int, word string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// ItemsMarkdown renders a list of items.
func ItemsMarkdown(v *Items) string {
	partials := map[string]string{
		"item_table": "item_table.md",
	}
	return renderTemplate("items", "items.md", partials, v)
}

// FoundMarkdown renders the result of a search by name.
func FoundMarkdown(v *Found) string {
	partials := map[string]string{
		"item_table": "item_table.md",
	}
	return renderTemplate("found", "found.md", partials, v)
}

// LocationsMarkdown renders the per location summary.
func LocationsMarkdown(v *Locations) string {
	return renderTemplate("locations", "locations.md", nil, v)
}

// QueryMarkdown renders the result of a JSONPath query as a JSON code block.
func QueryMarkdown(path string, result any) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("error encoding query result: %v", err)
	}
	v := struct {
		Path   string
		Result string
	}{path, string(data)}
	return renderTemplate("query", "query.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// Package report renders a duplicate-group listing to a standalone HTML
// file, using a Handlebars-style template with a "humansize" helper that
// renders each file's size in human-readable form. No idiomatic Go port of
// Handlebars turned up in the available library surface, so this uses the
// standard library's html/template with an equivalent registered
// "humansize" func backed by github.com/dustin/go-humanize.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

//go:embed templates/duplicate_report.html.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.New("duplicate_report").Funcs(template.FuncMap{
	"humansize": humanize.Bytes,
}).ParseFS(templateFS, "templates/duplicate_report.html.tmpl"))

// File is one entry in a duplicate group, as rendered in the report.
type File struct {
	Path string
	Size uint64
}

// Group is a set of files sharing content, for display purposes only.
type Group []File

// Data is the shape the template renders.
type Data struct {
	Title  string
	Groups []Group
}

// Render writes the HTML report for data to w.
func Render(w io.Writer, data Data) error {
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteFile renders data and writes it to path. If overwrite is false and
// path already exists, WriteFile fails rather than clobbering it.
func WriteFile(path string, data Data, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("write report: %s already exists (use --overwrite)", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("write report: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Render(f, data)
}

// Package view renders pages into one of two layouts, the public site layout
// and the admin panel layout, mirroring the original site's layout split.
package view

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

const (
	publicLayout = "layout.html"
	adminLayout  = "admin-layout.html"
)

var funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("02 Jan 2006")
	},
}

type Renderer struct {
	pages map[string]*page
}

type page struct {
	tmpl   *template.Template
	layout string
}

// New parses every page under dir against its layout. Pages under admin/
// get the admin layout, everything else the public one. The report template
// is standalone and handled by the PDF generator, not here.
func New(dir string) (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*page)}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".html") {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		base := filepath.Base(rel)
		if base == publicLayout || base == adminLayout || base == "report.html" {
			return nil
		}

		layout := publicLayout
		if strings.HasPrefix(rel, "admin/") {
			layout = adminLayout
		}

		tmpl, err := template.New(layout).Funcs(funcs).
			ParseFiles(filepath.Join(dir, layout), path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", rel, err)
		}

		name := strings.TrimSuffix(rel, ".html")
		r.pages[name] = &page{tmpl: tmpl, layout: layout}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Render writes the named page into its layout. A missing page name is a
// programming error and reported as such.
func (r *Renderer) Render(w http.ResponseWriter, name string, data map[string]any) error {
	p, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return p.tmpl.ExecuteTemplate(w, p.layout, data)
}

// Package render turns application state into HTML.
//
// It has two halves: pure functions that build view models from domain
// values (format.go, views.go), and a Renderer that executes the embedded
// html/template pages against those view models. Neither half keeps any
// state between calls, so rendering the same view twice yields the same bytes.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

const baseTemplate = "base.html"

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// pages lists every page template; each is parsed together with the base layout.
var pages = []string{PageLanding, PageLogin, PageDashboard, PageTripDetail, PageAbout, PageError}

// Renderer executes page templates inside the base layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template once. It fails if any template is
// malformed, so a broken template stops the server at start-up.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(baseTemplate).Funcs(funcs).ParseFS(templateFS, "templates/"+baseTemplate, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("render.NewRenderer: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustNewRenderer is NewRenderer for package-level wiring and tests.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes the named page, wrapped in the base layout, to w.
// The page is executed into a buffer first, so w receives either the whole
// document or nothing.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("render.Renderer.Render: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		return fmt.Errorf("render.Renderer.Render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

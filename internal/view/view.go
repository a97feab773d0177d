// Package view renders HTML pages from templates embedded in the binary.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages lists every view; each pairs with the shared layout.
var pages = []string{
	"dashboard",
	"products",
	"product_form",
	"clients",
	"client_form",
	"orders",
	"order_form",
	"expenses",
	"expense_form",
	"report",
	"error",
}

// Page is the data envelope every view renders with.
type Page struct {
	Title   string
	Flashes []string
	Data    any
}

// Renderer renders named views with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded templates.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named view to w.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown view: %s", name)
	}
	if err := t.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("failed to render view %s: %w", name, err)
	}
	return nil
}

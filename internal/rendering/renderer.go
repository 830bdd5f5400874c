// Package rendering draws console tables as HTML through safehtml templates.
package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"
)

//go:embed templates/*
var templateFS embed.FS

// Renderer holds the parsed console templates.
type Renderer struct {
	tableTemplate   *template.Template
	landingTemplate *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tableTemplate, err := template.New("table.html").ParseFS(trustedFS, "templates/layout.html", "templates/table.html")
	if err != nil {
		return nil, err
	}
	landingTemplate, err := template.New("landing.html").ParseFS(trustedFS, "templates/layout.html", "templates/landing.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{
		tableTemplate:   tableTemplate,
		landingTemplate: landingTemplate,
	}, nil
}

// Table renders one table page.
func (r *Renderer) Table(w io.Writer, vm TableView) error {
	return r.tableTemplate.Execute(w, vm)
}

// Landing renders the table index.
func (r *Renderer) Landing(w io.Writer, vm LandingView) error {
	return r.landingTemplate.Execute(w, vm)
}

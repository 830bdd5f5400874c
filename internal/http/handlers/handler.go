// Package handlers serves the console tables, forms and exports over gin.
package handlers

import (
	"travelconsole/internal/catalog"
	intconfig "travelconsole/internal/config"
	"travelconsole/internal/rendering"
	"travelconsole/internal/repositories"
)

// Handler carries the collaborators every endpoint reads from.
type Handler struct {
	Config   intconfig.Config
	Store    *repositories.Store
	Catalog  *catalog.Catalog
	Renderer *rendering.Renderer
}

// New wires a handler over store using the table settings in cfg.
func New(cfg intconfig.Config, store *repositories.Store) (*Handler, error) {
	r, err := rendering.New()
	if err != nil {
		return nil, err
	}
	c := catalog.New(store, cfg.Table.RowsPerPageOptions)
	c.RestrictExports(cfg.Export.Formats)
	return &Handler{
		Config:   cfg,
		Store:    store,
		Catalog:  c,
		Renderer: r,
	}, nil
}

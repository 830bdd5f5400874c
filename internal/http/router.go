package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelconsole/internal/config"
	h "travelconsole/internal/http/handlers"
	"travelconsole/internal/http/middleware"
	"travelconsole/internal/repositories"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine serving the console API and HTML pages over store.
func NewRouter(cfg intconfig.Config, store *repositories.Store) (*gin.Engine, error) {
	handler, err := h.New(cfg, store)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.CORS.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/", func(c *gin.Context) { c.Redirect(stdhttp.StatusFound, "/console") })
	console := r.Group("/console")
	console.GET("", handler.ConsoleIndex)
	console.GET("/:table", handler.ConsoleTable)

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/db-check", handler.DBCheck)
		api.GET("/routes", handler.Routes)

		api.GET("/dashboard", handler.Dashboard)

		// Tables
		tables := api.Group("/tables")
		tables.GET("", handler.ListTables)
		tables.GET("/:table", handler.GetTablePage)
		tables.GET("/:table/rows/:id", handler.GetTableRow)
		tables.GET("/:table/export/:format", handler.ExportTable)

		// Entity forms (validated, not stored)
		forms := api.Group("/forms")
		forms.GET("", handler.ListForms)
		forms.POST("/:form", handler.CreateForm)
		forms.PUT("/:form/:id", handler.UpdateForm)

		// Commission rules
		commissions := api.Group("/commissions")
		commissions.POST("", handler.CreateCommission)
		commissions.PUT("/:id", handler.UpdateCommission)
		commissions.POST("/:id/toggle", handler.ToggleCommission)
	}

	h.SetRouter(r)
	return r, nil
}

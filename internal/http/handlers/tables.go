package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"travelconsole/internal/catalog"
	"travelconsole/internal/http/middleware"
	"travelconsole/internal/rendering"
	"travelconsole/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) table(c *gin.Context) (catalog.Table, bool) {
	t, err := h.Catalog.Table(c.Param("table"))
	if err != nil {
		RespondDomainError(c, err)
		return nil, false
	}
	return t, true
}

// ListTables returns every table description in navigation order.
func (h *Handler) ListTables(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tables": h.Catalog.Infos()})
}

// GetTablePage computes the page selected by q, sort, dir, page and rows.
func (h *Handler) GetTablePage(c *gin.Context) {
	t, ok := h.table(c)
	if !ok {
		return
	}
	state, err := rendering.StateFromQuery(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := t.Query(c.Request.Context(), state)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetTableRow(c *gin.Context) {
	t, ok := h.table(c)
	if !ok {
		return
	}
	rec, err := t.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": t.Info().Slug, "data": rec})
}

// ExportTable downloads every record matching the query as csv or pdf.
func (h *Handler) ExportTable(c *gin.Context) {
	t, ok := h.table(c)
	if !ok {
		return
	}
	format := strings.ToLower(c.Param("format"))
	info := t.Info()
	allowed := map[string]bool{
		"csv": info.Options.AllowCSVExport,
		"pdf": info.Options.AllowPDFExport,
	}
	if enabled, known := allowed[format]; known && !enabled {
		respondError(c, http.StatusForbidden, "export_disabled",
			fmt.Sprintf("%s export is not enabled for %s", strings.ToUpper(format), info.Title), nil)
		return
	}

	state, err := rendering.StateFromQuery(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sheet, err := t.Sheet(c.Request.Context(), state)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ExportService{
		Orientation: h.Config.Export.PDFOrientation,
		RequestID:   middleware.GetRequestID(c),
	}
	body, filename, err := svc.Export(sheet, format)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	contentType := "text/csv; charset=utf-8"
	if format == "pdf" {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

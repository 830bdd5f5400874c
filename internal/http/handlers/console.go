package handlers

import (
	"bytes"
	"net/http"

	"travelconsole/internal/rendering"

	"github.com/gin-gonic/gin"
)

const (
	consoleBase = "/console"
	tablesAPI   = "/api/tables"
)

// ConsoleIndex renders the HTML list of tables.
func (h *Handler) ConsoleIndex(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.Renderer.Landing(&buf, rendering.NewLandingView(consoleBase, h.Catalog.Infos())); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ConsoleTable renders one table page as HTML. Its links carry the whole state
// in the query string, so every click is a fresh GET.
func (h *Handler) ConsoleTable(c *gin.Context) {
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
	var buf bytes.Buffer
	vm := rendering.NewTableView(consoleBase, tablesAPI, page, h.Catalog.Infos())
	if err := h.Renderer.Table(&buf, vm); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

package handlers

import (
	"net/http"
	"sync"

	intconfig "travelconsole/internal/config"
	"travelconsole/internal/http/middleware"
	"travelconsole/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "travel console is running",
		"source":  h.Store.Kind,
		"tables":  len(h.Catalog.Tables()),
	})
}

// DBCheck pings MySQL and counts the console tables it holds.
func (h *Handler) DBCheck(c *gin.Context) {
	if h.Config.Data.Source != intconfig.SourceMySQL {
		c.JSON(http.StatusOK, gin.H{"source": h.Store.Kind, "message": "serving in-memory sample data, no database configured"})
		return
	}
	ctx := c.Request.Context()
	if err := intconfig.EnsureDB(ctx, h.Config.MySQL.DSN); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "db", "check", "ping failed: "+err.Error())
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database is not reachable", nil)
		return
	}
	var count int
	err := intconfig.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE()").Scan(&count)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "db_query_failed", "failed to query database", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "tables_in_db": count})
}

func (h *Handler) Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}

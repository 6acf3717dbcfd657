package handlers

import (
	"net/http"
	"sync"

	intconfig "busbook/internal/config"
	"busbook/internal/repositories"

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

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "busbook gateway running"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ticket cache db not reachable: " + err.Error()})
		return
	}
	repo := repositories.TicketCacheRepo{}
	count, err := repo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cache query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ticket cache OK", "cached_tickets": count})
}

func Routes(c *gin.Context) {
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

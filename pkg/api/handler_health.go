package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CollideNV/hadron/pkg/database"
	"github.com/CollideNV/hadron/pkg/version"
)

// healthzHandler is the liveness probe: the process is up.
func (s *Server) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Full()})
}

// readyzHandler is the readiness probe: database reachable and, when a
// worker pool runs in this process, the pool is healthy.
func (s *Server) readyzHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	resp := gin.H{
		"status":   "healthy",
		"database": dbHealth,
	}
	status := http.StatusOK
	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			resp["status"] = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, resp)
}

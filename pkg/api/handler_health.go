package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/copymill/copymill/pkg/database"
	"github.com/copymill/copymill/pkg/version"
)

// handleHealth handles GET /health (liveness).
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": version.AppName,
		"version": version.GitCommit,
	})
}

// handleReady handles GET /health/ready (readiness: DB ping + pool health).
func (s *Server) handleReady(c *gin.Context) {
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

	poolHealth := s.pool.Health()
	status := http.StatusOK
	overall := "healthy"
	if !poolHealth.IsHealthy {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"database": dbHealth,
		"pool":     poolHealth,
	})
}

// handleSystemHealth handles GET /system/health with the full worker pool
// breakdown.
func (s *Server) handleSystemHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.pool.Health())
}

// handleSystemWarnings handles GET /system/warnings.
func (s *Server) handleSystemWarnings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"warnings": s.warnings.GetWarnings()})
}

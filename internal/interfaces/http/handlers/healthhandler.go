package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genturix/internal/infrastructure/database"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	status := "ok"
	code := http.StatusOK
	if err := database.Ping(); err != nil {
		dbStatus = "disconnected"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": dbStatus,
		"version":  Version,
	})
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HealthHandler expose la sonde de disponibilité du service et de la base.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler crée un handler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health gère GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success":   false,
			"message":   "API Monde Délice - Problème de connexion",
			"timestamp": time.Now().Format(time.RFC3339),
			"database":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "API Monde Délice est en ligne",
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  "connected",
	})
}

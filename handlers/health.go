package handlers

import (
	"context"
	"net/http"

	"cnapp/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const OnlineMessage = "API is online!"

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	log   *logger.Logger
}

func NewHealthHandler(store Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: log}
}

// Root handles GET / as a plain-text liveness probe.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, OnlineMessage)
}

// Health handles GET /health and reports whether the store answers.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			h.log.With(c.Request.Context()).Warn("store ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

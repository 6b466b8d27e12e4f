package handlers

import (
	"context"
	"net/http"

	"cnapp/logger"
	"cnapp/models"

	"github.com/gin-gonic/gin"
)

type UserDirectory interface {
	ListUsernames(ctx context.Context) ([]string, error)
}

type UserHandler struct {
	service UserDirectory
	log     *logger.Logger
}

func NewUserHandler(service UserDirectory, log *logger.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// GetUsers handles GET /users. Only usernames are exposed.
func (h *UserHandler) GetUsers(c *gin.Context) {
	names, err := h.service.ListUsernames(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "failed to fetch users")
		return
	}

	users := make([]models.UserSummary, 0, len(names))
	for _, name := range names {
		users = append(users, models.UserSummary{Username: name})
	}
	c.JSON(http.StatusOK, users)
}

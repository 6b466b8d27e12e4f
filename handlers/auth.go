package handlers

import (
	"context"
	"net/http"

	"cnapp/logger"

	"github.com/gin-gonic/gin"
)

type Authenticator interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AuthHandler struct {
	service Authenticator
	log     *logger.Logger
}

func NewAuthHandler(service Authenticator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, "username and password are required")
		return
	}

	token, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.log, err, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, "username and password are required")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.log, err, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

package handlers

import (
	"context"
	"net/http"

	"cnapp/logger"
	"cnapp/models"
	"cnapp/services"

	"github.com/gin-gonic/gin"
)

type MessageStore interface {
	Send(ctx context.Context, in services.SendInput) (*models.Message, error)
	ListAll(ctx context.Context) ([]models.Message, error)
}

type SendMessageRequest struct {
	Text     *string       `json:"text"`
	Audio    *string       `json:"audio"`
	Sender   string        `json:"sender" binding:"required"`
	Receiver string        `json:"receiver" binding:"required"`
	Reply    *models.Reply `json:"reply"`
}

type MessageHandler struct {
	service MessageStore
	log     *logger.Logger
}

func NewMessageHandler(service MessageStore, log *logger.Logger) *MessageHandler {
	return &MessageHandler{service: service, log: log}
}

// SendMessage handles POST /messages.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err, "sender and receiver are required")
		return
	}

	msg, err := h.service.Send(c.Request.Context(), services.SendInput{
		Text:     req.Text,
		Audio:    req.Audio,
		Sender:   req.Sender,
		Receiver: req.Receiver,
		Reply:    req.Reply,
	})
	if err != nil {
		writeError(c, h.log, err, "failed to send message")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// GetMessages handles GET /messages.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	messages, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "failed to fetch messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

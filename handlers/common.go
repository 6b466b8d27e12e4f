package handlers

import (
	"errors"
	"net/http"

	"cnapp/apperrors"
	"cnapp/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors to status codes. Internal detail is logged and
// never returned to the caller.
func writeError(c *gin.Context, log *logger.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user already exists"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid username or password"})
	case errors.Is(err, apperrors.ErrValidation):
		msg := "invalid request body"
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			msg = verr.Msg
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	default:
		log.With(c.Request.Context()).Error(internalMsg, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalMsg})
	}
}

// writeBindError reports a request body that failed to decode or validate.
func writeBindError(c *gin.Context, err error, requiredMsg string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: requiredMsg})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

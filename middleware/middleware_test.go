package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cnapp/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeParser struct{}

func (fakeParser) ParseToken(token string) (string, error) {
	if token == "good" {
		return "user-1", nil
	}
	return "", errors.New("bad token")
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(JWTAuthMiddleware(fakeParser{}))
	r.GET("/private", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserIDKey))
	})
	r.OPTIONS("/private", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name       string
		method     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", http.MethodGet, "Bearer good", http.StatusOK, "user-1"},
		{"missing header", http.MethodGet, "", http.StatusUnauthorized, ""},
		{"wrong scheme", http.MethodGet, "Basic good", http.StatusUnauthorized, ""},
		{"no token", http.MethodGet, "Bearer ", http.StatusUnauthorized, ""},
		{"invalid token", http.MethodGet, "Bearer bad", http.StatusUnauthorized, ""},
		{"preflight passes", http.MethodOptions, "", http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(logger.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		require.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &logger.Logger{Logger: zap.New(core)}

	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(l))
	r.GET("/messages", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/messages", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.Equal(t, "req-1", fields["request_id"])
}

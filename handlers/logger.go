package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request-scoped logger set by middleware.RequestLogger,
// or fallback when the request carries none.
func getLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	if fallback != nil {
		return fallback
	}
	return zap.L()
}

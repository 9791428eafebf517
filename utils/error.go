package utils

import (
	"net/http"

	"pioneertravel/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware to catch panics and return the standard
// {isSuccess, message} envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.Failure("Internal Server Error"))
			}
		}()
		c.Next()
	}
}

// JSONError logs a warning and sends a failure envelope.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.Int("status", status), zap.String("details", details))
	c.JSON(status, models.Failure(message))
}

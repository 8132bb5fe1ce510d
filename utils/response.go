package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondWithError sends a standardized JSON error response
func RespondWithError(c *gin.Context, status int, message string) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(status, gin.H{"success": false, "message": message})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Une erreur inattendue s'est produite. Réessayez plus tard.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

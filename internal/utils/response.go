package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope statuses used by every JSON response.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SendSuccess sends a standardized success envelope.
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": StatusSuccess,
		"data":   data,
	})
}

// SendError sends a standardized error envelope.
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  StatusError,
		"message": message,
	})
}

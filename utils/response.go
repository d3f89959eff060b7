package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. kind is the stable
// machine-readable failure kind; message is the human explanation. Raw store
// errors stay out of the body and go to the logs instead.
func JSONError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   kind,
	})
}

package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse writes the standard auction API envelope: status code,
// human-readable message, and the payload under "data".
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError writes the envelope for a failed request, carrying the raw
// error string alongside the mapped message.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

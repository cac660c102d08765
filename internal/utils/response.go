package utils

import "github.com/gin-gonic/gin"

// OK writes data as the JSON response body.
func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// Error writes {"error": msg} with the given status code.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"error": msg,
	})
}

package utils

import "github.com/gin-gonic/gin"

// All responses share the {success, message, data} envelope.

func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a 200 JSON response. payload keys are merged into
// the envelope next to "success", e.g. {"success":true,"patient":{...}}.
func SuccessResponse(c *gin.Context, payload gin.H) {
	JSONResponse(c, http.StatusOK, payload)
}

// CreatedResponse sends a 201 JSON response with the same envelope as
// SuccessResponse.
func CreatedResponse(c *gin.Context, payload gin.H) {
	JSONResponse(c, http.StatusCreated, payload)
}

// JSONResponse sends a success envelope with the given status code
func JSONResponse(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// ErrorResponseWith sends an error envelope carrying extra keys
func ErrorResponseWith(c *gin.Context, statusCode int, message string, extra gin.H) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every handler replies with the same envelope:
//
//	{success: bool, message?: string, <resource>?: object|array, receivedData?: object}
//
// The resource key is named after what is returned ("user", "collection", ...)
// so clients never have to unwrap a generic data field.

// Success writes the envelope with the named resource attached.
func Success(c *gin.Context, status int, resource string, data any, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if resource != "" {
		body[resource] = data
	}
	c.JSON(status, body)
}

// Error writes a failure envelope.
func Error(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

// ValidationError writes a failure envelope echoing the received payload so
// callers can see which fields the server actually got.
func ValidationError(c *gin.Context, message string, received any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success":      false,
		"message":      message,
		"receivedData": received,
	})
}

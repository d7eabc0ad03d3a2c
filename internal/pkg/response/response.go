package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The three lead forms on the website all expect the same response shape,
// so every handler goes through these helpers.

func Success(c *gin.Context, message string, data interface{}, recordID *int64) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  message,
		"data":     data,
		"recordId": recordID,
	})
}

func ValidationError(c *gin.Context, missingFields []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success":       false,
		"message":       "Please fill in all required fields.",
		"missingFields": missingFields,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

// InternalError never exposes the underlying error to the client.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Something went wrong. Please try again later.",
	})
}

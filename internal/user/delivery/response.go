package delivery

import (
	"log"
	"net/http"

	"vidstream-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// respond writes the success envelope: {statusCode, data, message}.
func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"statusCode": status,
		"data":       data,
		"message":    message,
	})
}

// respondError writes the failure envelope: {statusCode, message}. Typed
// failures keep their code and message; anything unexpected becomes a 500.
func respondError(c *gin.Context, err error) {
	status := apperror.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{
		"statusCode": status,
		"message":    apperror.MessageFor(err),
	})
}

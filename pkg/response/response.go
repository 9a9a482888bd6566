package response

import (
	"log"

	"github.com/gin-gonic/gin"
)

// Response is the standard API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response. err, when non-nil, is logged but not
// leaked to the client.
func Error(c *gin.Context, status int, message string, err error) {
	if err != nil {
		log.Printf("[API] %s: %v", message, err)
	}
	c.JSON(status, Response{
		Code:    status,
		Message: message,
	})
}

package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendorhub/rfp-backend/pkg/apperror"
)

// Every endpoint answers with the same envelope: {"response": "success", ...}
// or {"response": "error", "error": [messages...]}.

func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"response": "success"}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)
	if code == http.StatusInternalServerError {
		log.Printf("[internal error] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(code, gin.H{"response": "error", "error": apperror.Errors(err)})
}

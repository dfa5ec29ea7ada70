package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var sensitiveFields = map[string]bool{
	"password":     true,
	"old_password": true,
	"new_password": true,
	"otp":          true,
	"token":        true,
}

// RequestLogger tags each request with an id and logs method, path, status
// and latency. On error responses the submitted form fields are logged too,
// with credential fields redacted.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		log.Printf("[%s] %s %s -> %d (%s)",
			requestID, c.Request.Method, c.Request.URL.Path, status, time.Since(start))

		if status >= 400 && len(c.Request.PostForm) > 0 {
			log.Printf("[%s] form: %v", requestID, redactForm(c.Request.PostForm))
		}
	}
}

func redactForm(form map[string][]string) map[string]string {
	out := make(map[string]string, len(form))
	for k, v := range form {
		if sensitiveFields[k] {
			out[k] = "[REDACTED]"
			continue
		}
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

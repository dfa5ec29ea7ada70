package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vendorhub/rfp-backend/internal/model"
	"github.com/vendorhub/rfp-backend/internal/service"
)

const callerKey = "caller"

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware() *AuthMiddleware {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-me"
	}
	return &AuthMiddleware{secret: secret}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.require(func(service.Caller) bool { return true }, "")
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(service.Caller.IsAdmin, "Forbidden")
}

func (m *AuthMiddleware) RequireVendor() gin.HandlerFunc {
	return m.require(service.Caller.IsVendor, "Forbidden - Vendor only")
}

func (m *AuthMiddleware) require(allowed func(service.Caller) bool, denyMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := m.verify(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"response": "error", "error": []string{"Unauthorized"}})
			c.Abort()
			return
		}

		if !allowed(caller) {
			c.JSON(http.StatusForbidden, gin.H{"response": "error", "error": []string{denyMessage}})
			c.Abort()
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

func (m *AuthMiddleware) verify(c *gin.Context) (service.Caller, error) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return service.Caller{}, fmt.Errorf("missing bearer token")
	}

	token, err := jwt.ParseWithClaims(parts[1], &service.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return service.Caller{}, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok {
		return service.Caller{}, fmt.Errorf("invalid token claims")
	}
	if claims.UserType != model.UserTypeAdmin && claims.UserType != model.UserTypeVendor {
		return service.Caller{}, fmt.Errorf("unknown user type %q", claims.UserType)
	}

	return service.Caller{ID: claims.UserID, Type: claims.UserType}, nil
}

// CallerFrom returns the authenticated caller set by RequireAuth and friends.
func CallerFrom(c *gin.Context) (service.Caller, bool) {
	v, exists := c.Get(callerKey)
	if !exists {
		return service.Caller{}, false
	}
	caller, ok := v.(service.Caller)
	return caller, ok
}

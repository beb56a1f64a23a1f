package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user ID.
const ContextUserID = "quanlythuchi-user-id"

type httpError struct {
	Error string `json:"error"`
}

// Authenticate reads an optional bearer token. Requests without an
// Authorization header pass unauthenticated, requests with an invalid
// one are rejected.
func Authenticate(s *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: "invalid Authorization header format"})
			return
		}

		userID, err := s.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: err.Error()})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user of the request.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// Authorize reports if the request may access data of the user. Only
// authenticated requests are restricted to their own user.
func Authorize(c *gin.Context, userID string) bool {
	authenticated, ok := UserID(c)
	return !ok || authenticated == userID
}

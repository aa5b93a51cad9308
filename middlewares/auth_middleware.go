package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tastetrack/ordering/utils"
)

// SessionMiddleware resolves the caller's session key and bearer credential.
// Any presented bearer token is forwarded upstream as-is; the order service
// is the authority on whether it is acceptable. Local verification only
// picks the session key: a token we can verify scopes the session to the
// user it names, otherwise the session falls back to X-Session-Id, or to
// client IP as a last resort.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			bearer = strings.TrimPrefix(authHeader, "Bearer ")
		}
		c.Set("bearer", bearer)

		if bearer != "" {
			claims, err := utils.ParseToken(bearer)
			if err == nil && claims.UserID != 0 {
				c.Set("userID", claims.UserID)
				c.Set("sessionKey", fmt.Sprintf("user:%d", claims.UserID))
				c.Next()
				return
			}
			utils.InfoLogger.Printf("Bearer token not locally verifiable, forwarding it upstream anyway: %v", err)
		}

		sessionKey := c.GetHeader("X-Session-Id")
		if sessionKey == "" {
			sessionKey = "ip:" + c.ClientIP()
		}
		c.Set("sessionKey", sessionKey)
		c.Next()
	}
}

// RequireAuth aborts requests that did not present a valid bearer token.
// Used for the administrative status-transition endpoint.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("bearer") == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionKey reads the session key set by SessionMiddleware.
func SessionKey(c *gin.Context) string {
	return c.GetString("sessionKey")
}

// Bearer reads the raw bearer token set by SessionMiddleware, empty for
// anonymous callers.
func Bearer(c *gin.Context) string {
	return c.GetString("bearer")
}

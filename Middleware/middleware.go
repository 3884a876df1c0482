package Middleware

import (
	"net/http"
	"time"

	"CDCPlatform/Sessions"
	"CDCPlatform/Utils/Token"

	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := Token.TokenValid(c)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Invalid")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRoles gates a route group on the guard's decision. No roles means
// any authenticated user.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		tokenStr := Token.ExtractToken(c)

		session, ok := Sessions.Active.Resolve(tokenStr, now)
		if !ok {
			// Not in the registry (e.g. after a restart); rebuild from the
			// token's own claims.
			session = sessionFromClaims(c, tokenStr)
		}

		switch Sessions.Authorize(session, roles, now) {
		case Sessions.DenyUnauthenticated:
			Sessions.Active.Clear(tokenStr)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
		case Sessions.DenyForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this page"})
			c.Abort()
		default:
			c.Set("session", session)
			c.Next()
		}
	}
}

func sessionFromClaims(c *gin.Context, tokenStr string) *Sessions.Session {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		return nil
	}
	role, err := Token.ExtractTokenRole(c)
	if err != nil {
		return nil
	}
	expiry, err := Token.ExtractTokenExpiry(c)
	if err != nil {
		return nil
	}
	return &Sessions.Session{
		UserID:    userID,
		Role:      role,
		Token:     tokenStr,
		ExpiresAt: expiry,
	}
}

package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"busbook/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

// Session builds the per-request Session from the bearer token. Claims are
// parsed without signature verification: the upstream API holds the signing
// key and re-verifies the token on every proxied call; this side only reads
// identity hints for request routing and role gating.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, sessionFromRequest(c))
		c.Next()
	}
}

// GetSession returns the Session attached to the request, empty if none.
func GetSession(c *gin.Context) domain.Session {
	if c == nil {
		return domain.Session{}
	}
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(domain.Session); ok {
			return s
		}
	}
	return domain.Session{}
}

// RequireAuth rejects requests carrying no bearer token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"code":       "unauthenticated",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects sessions without the ADMIN role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if !sess.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"code":       "unauthenticated",
				"request_id": GetRequestID(c),
			})
			return
		}
		if !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "admin role required",
				"code":       "forbidden",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

func sessionFromRequest(c *gin.Context) domain.Session {
	raw := bearerToken(c)
	if raw == "" {
		return domain.Session{}
	}

	sess := domain.Session{Token: raw}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err == nil {
		sess.UserID = claimString(claims, "userId", "user_id", "id", "sub")
		sess.Role = claimString(claims, "role")
		sess.Username = claimString(claims, "username", "name")
		sess.Email = claimString(claims, "email")
	}

	// Fallback for clients that pass identity explicitly alongside the token.
	if sess.UserID == "" {
		sess.UserID = strings.TrimSpace(c.GetHeader("X-User-Id"))
	}
	if sess.Role == "" {
		sess.Role = strings.TrimSpace(c.GetHeader("X-User-Role"))
	}
	return sess
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		v, ok := claims[k]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			if s := strings.TrimSpace(val); s != "" {
				return s
			}
		case json.Number:
			return val.String()
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
	}
	return ""
}

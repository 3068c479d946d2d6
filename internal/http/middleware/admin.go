package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionKeyAdmin = "is_admin"

// SetAdmin marks or clears the admin flag on the cookie session.
func SetAdmin(c *gin.Context, admin bool) error {
	sess := sessions.Default(c)
	if admin {
		sess.Set(sessionKeyAdmin, true)
	} else {
		sess.Delete(sessionKeyAdmin)
	}
	return sess.Save()
}

// IsAdmin reports whether the current session is an authenticated admin.
func IsAdmin(c *gin.Context) bool {
	sess := sessions.Default(c)
	v, _ := sess.Get(sessionKeyAdmin).(bool)
	return v
}

// RequireAdmin gates the admin API behind the session flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

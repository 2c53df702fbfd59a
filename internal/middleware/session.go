package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/mergington/activities/internal/auth"
)

const (
	// ContextAuthenticated is the key for the caller's authenticated fact in gin context.
	ContextAuthenticated = "authenticated"
	// ContextTeacher is the key for the authenticated teacher's username in gin context.
	ContextTeacher = "teacher"
	// ContextTeacherRole is the key for the authenticated teacher's role in gin context.
	ContextTeacherRole = "teacher_role"
)

// SessionChecker is the part of the AuthGate the middleware needs.
type SessionChecker interface {
	CheckSession(ctx context.Context, token string) (*auth.Claims, bool)
}

// Session resolves the bearer token into an authenticated fact. It never
// aborts: handlers and the registration engine decide what an anonymous caller may do.
func Session(gate SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := gate.CheckSession(c.Request.Context(), auth.BearerToken(c))
		c.Set(ContextAuthenticated, ok)
		if ok {
			c.Set(ContextTeacher, claims.Username)
			c.Set(ContextTeacherRole, claims.Role)
		}
		c.Next()
	}
}

// IsAuthenticated reports whether Session accepted the caller's token.
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(ContextAuthenticated)
}

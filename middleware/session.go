package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// EnsureCartSession gives every visitor a session id cookie so their
// cart can be told apart from everyone else's. The id is opaque; carts
// keyed on it live only in server memory.
func EnsureCartSession(c *gin.Context) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	}
	c.Set("session_id", id)
	c.Next()
}

// SessionID returns the cart session id set by EnsureCartSession.
func SessionID(c *gin.Context) string {
	id, _ := c.Get("session_id")
	s, _ := id.(string)
	return s
}

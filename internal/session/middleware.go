package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName identifies the browser session. There is no authentication:
	// an unknown or missing cookie simply mints a fresh session.
	CookieName = "dr_jackson_session"

	sessionContextKey = "session"
)

// Middleware attaches the caller's session to the gin context, creating one
// (and setting the cookie) when needed.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(CookieName)
		sess, ok := s.Get(id)
		if !ok {
			sess = s.Create()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     CookieName,
				Value:    sess.ID,
				MaxAge:   int(s.ttl.Seconds()),
				Path:     "/",
				Secure:   gin.Mode() == gin.ReleaseMode,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// FromContext retrieves the session stored by the middleware.
func FromContext(c *gin.Context) (*Session, bool) {
	val, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := val.(*Session)
	return sess, ok
}

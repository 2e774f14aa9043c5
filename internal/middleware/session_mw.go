package middleware

import (
	"log"
	"net/http"
	"time"

	"jobconnect/internal/repository"
	"jobconnect/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey       = "authUser"
	SessionCookieName = "session_token"
)

// SessionAuthMiddleware authenticates requests via the session cookie. The
// cookie value's signature is checked first, then the token is resolved
// against the server-side session table; expiry is checked on every read and
// expired rows are deleted lazily.
func SessionAuthMiddleware(tokenUtil *utils.TokenUtil, sessionRepo repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		token, err := tokenUtil.Verify(cookieValue)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		session, err := sessionRepo.FindByToken(c.Request.Context(), token)
		if err != nil {
			log.Printf("Error loading session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if session.Expired(time.Now()) {
			if err := sessionRepo.Delete(c.Request.Context(), token); err != nil {
				log.Printf("Error deleting expired session: %v", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		// Set authenticated user in context
		c.Set(AuthUserKey, session.UserID)

		c.Next()
	}
}

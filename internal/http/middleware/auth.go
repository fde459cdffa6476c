package middleware

import (
	"net/http"

	"taskvault/internal/service"

	"github.com/gin-gonic/gin"
)

// Auth reads the session cookie, verifies the JWT and puts the user id
// into the request context under "user_id". The request is aborted with
// 401 before any handler runs when the token is missing or invalid; the
// two failure messages deliberately reveal nothing beyond that.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(service.TokenCookieName)
		if err != nil || token == "" {
			AuthRejected.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "Unauthorized",
				"message": "Missing token",
			})
			return
		}

		userID, err := service.ParseJWT(token)
		if err != nil {
			AuthRejected.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "Unauthorized",
				"message": "Invalid token",
			})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aayushsah6969/ShoeStore/auth"
)

// RequireUser guards storefront routes with the user session cookie.
func RequireUser() gin.HandlerFunc {
	return requireSession(auth.UserCookie)
}

// RequireAdmin guards dashboard routes with the admin session cookie. An
// ordinary user token presented here is rejected because it lives under a
// different cookie name.
func RequireAdmin() gin.HandlerFunc {
	return requireSession(auth.AdminCookie)
}

func requireSession(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session cookies. The user and admin sessions use distinct cookie names so
// the two privilege levels can never satisfy each other's guard.
const (
	UserCookie  = "shoe_token"
	AdminCookie = "admin_token"

	TokenValidity = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the verified content of a session token.
type Claims struct {
	UserID uint
	Email  string
}

// IssueToken signs a session token embedding the user id and email.
func IssueToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   time.Now().Add(TokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseToken verifies a session token and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &Claims{UserID: uint(id), Email: email}, nil
}

// SetSessionCookie attaches the token as an HTTP-only, same-site-strict
// cookie. Secure is set in production only so local development over plain
// HTTP keeps working.
func SetSessionCookie(c *gin.Context, name, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, token, int(TokenValidity.Seconds()), "/", "", secureCookies(), true)
}

// ClearSessionCookie expires the cookie. Clearing succeeds even when no
// session existed.
func ClearSessionCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, "", -1, "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return os.Getenv("ENV") == "production"
}

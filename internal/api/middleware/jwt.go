package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ngodingskuyy/doctypes-go/config"
	"github.com/ngodingskuyy/doctypes-go/pkg/response"
)

var jwtKey []byte

// Init sets the JWT signing key from config. Token issuance is the job of the
// surrounding platform; this service only verifies.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	return claims, nil
}

// JWTAuthMiddleware validates a Bearer token in the Authorization header or
// the token cookie. When auth is disabled by config it passes everything
// through unauthenticated.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.AuthEnabled {
			c.Next()
			return
		}

		var tokenStr string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
				c.Abort()
				return
			}
			tokenStr = parts[1]
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}

		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Missing token"})
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil || claims == nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// ClaimsFromContext reads the claims stored by JWTAuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

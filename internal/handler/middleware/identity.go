package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"resource-booker/internal/domain/booking"
	"resource-booker/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const ctxRequesterKey = "requester"

// IdentityMiddleware consumes tokens minted by the external identity
// provider. The engine performs no authentication itself: it only validates
// the signature and lifts the pre-authenticated requester snapshot into the
// request context.
type IdentityMiddleware struct {
	secret []byte
}

func NewIdentityMiddleware(cfg config.AuthConfig) *IdentityMiddleware {
	return &IdentityMiddleware{
		secret: []byte(cfg.TokenSecret),
	}
}

func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		requester, err := m.parseRequester(token)
		if err != nil {
			slog.Warn("Token validation failed in identity middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxRequesterKey, requester)
		c.Next()
	}
}

func (m *IdentityMiddleware) parseRequester(tokenString string) (booking.Requester, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return booking.Requester{}, err
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return booking.Requester{}, err
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return booking.Requester{}, err
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return booking.NewRequester(userID, name, email)
}

func GetRequester(c *gin.Context) (booking.Requester, bool) {
	value, exists := c.Get(ctxRequesterKey)
	if !exists {
		return booking.Requester{}, false
	}
	requester, ok := value.(booking.Requester)
	return requester, ok
}

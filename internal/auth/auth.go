package auth

import (
	"net/http"
	"strings"

	"canteen-service/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// DevAdminToken is the demo dashboard sentinel. It is honored only when the
// gate was built with AllowDevAdminToken set.
const DevAdminToken = "admin-demo-token"

const principalKey = "auth.userId"

type Gate struct {
	secret        []byte
	allowDevAdmin bool
}

func NewGate(cfg config.JWTConfig) *Gate {
	return &Gate{
		secret:        []byte(cfg.SecretKey),
		allowDevAdmin: cfg.AllowDevAdminToken,
	}
}

// RequireUser verifies the request token and stores the decoded subject id
// as the request principal.
func (g *Gate) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			unauthorized(c, "Not Authorized, please login again")
			return
		}

		userID, err := g.verify(token)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(principalKey, userID)
		c.Next()
	}
}

// RequireAdmin verifies the token like RequireUser and additionally honors
// the demo sentinel when dev mode is on. Any authenticated principal passes;
// role separation lives in the identity service that issues the tokens.
func (g *Gate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			unauthorized(c, "Not Authorized, please login again")
			return
		}

		if g.allowDevAdmin && token == DevAdminToken {
			c.Set(principalKey, "demo-admin")
			c.Next()
			return
		}

		userID, err := g.verify(token)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(principalKey, userID)
		c.Next()
	}
}

func (g *Gate) verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil {
		return "", err
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", jwt.NewValidationError("token missing id claim", jwt.ValidationErrorClaimsInvalid)
	}
	return id, nil
}

// UserID returns the principal set by the middleware, or empty.
func UserID(c *gin.Context) string {
	id, _ := c.Get(principalKey)
	s, _ := id.(string)
	return s
}

// Tokens arrive either as a Bearer header or, from the legacy clients, in a
// bare "token" header.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader("token")
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

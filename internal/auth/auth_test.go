package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"canteen-service/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func newTestRouter(gate *Gate, middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})
	return r
}

func TestGate_RequireUser(t *testing.T) {
	gate := NewGate(config.JWTConfig{SecretKey: testSecret})

	tests := []struct {
		name           string
		header         string
		value          string
		expectedStatus int
	}{
		{
			name:           "valid bearer token",
			header:         "Authorization",
			value:          "Bearer " + signToken(t, testSecret, jwt.MapClaims{"id": "u1"}),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "legacy token header",
			header:         "token",
			value:          signToken(t, testSecret, jwt.MapClaims{"id": "u1"}),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with the wrong secret",
			header:         "Authorization",
			value:          "Bearer " + signToken(t, "other-secret", jwt.MapClaims{"id": "u1"}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token without id claim",
			header:         "Authorization",
			value:          "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "u1"}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			header:         "Authorization",
			value:          "Bearer not.a.jwt",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(gate, gate.RequireUser())
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"userId":"u1"`)
			}
		})
	}
}

func TestGate_RequireAdmin_DevSentinel(t *testing.T) {
	t.Run("honored when dev mode is on", func(t *testing.T) {
		gate := NewGate(config.JWTConfig{SecretKey: testSecret, AllowDevAdminToken: true})
		router := newTestRouter(gate, gate.RequireAdmin())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+DevAdminToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"demo-admin"`)
	})

	t.Run("rejected when dev mode is off", func(t *testing.T) {
		gate := NewGate(config.JWTConfig{SecretKey: testSecret})
		router := newTestRouter(gate, gate.RequireAdmin())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+DevAdminToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("real token still passes", func(t *testing.T) {
		gate := NewGate(config.JWTConfig{SecretKey: testSecret, AllowDevAdminToken: true})
		router := newTestRouter(gate, gate.RequireAdmin())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{"id": "staff-1"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"staff-1"`)
	})
}

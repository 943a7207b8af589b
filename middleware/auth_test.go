package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidhub-backend/models"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	r.GET("/admin", AuthMiddleware(), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	SetJWTSecret("unit-secret")
	r := authTestRouter()

	token := signToken(t, "unit-secret", jwt.MapClaims{
		"user_id": "abc123",
		"role":    models.RoleUser,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	rec := get(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "abc123")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	SetJWTSecret("unit-secret")
	r := authTestRouter()

	rec := get(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = get(r, "/protected", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	SetJWTSecret("unit-secret")
	r := authTestRouter()

	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "abc123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	rec := get(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	SetJWTSecret("unit-secret")
	r := authTestRouter()

	token := signToken(t, "unit-secret", jwt.MapClaims{
		"user_id": "abc123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	rec := get(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	SetJWTSecret("unit-secret")
	r := authTestRouter()

	userToken := signToken(t, "unit-secret", jwt.MapClaims{
		"user_id": "abc123",
		"role":    models.RoleUser,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	rec := get(r, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := signToken(t, "unit-secret", jwt.MapClaims{
		"user_id": "abc123",
		"role":    models.RoleAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	rec = get(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

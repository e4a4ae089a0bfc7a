package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, userID uint, role models.Role, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := helper.NewHTTPHelper(false, nil)
	r := gin.New()

	whoami := func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role, "ok": ok})
	}
	r.GET("/private", AuthMiddleware(testSecret, h), whoami)
	r.GET("/optional", OptionalAuth(testSecret), whoami)
	r.GET("/admin", AuthMiddleware(testSecret, h), RequireRole(h, models.RoleAdmin), whoami)
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	valid := signToken(t, testSecret, 7, models.RoleMember, time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"valid", valid, http.StatusOK},
		{"expired", signToken(t, testSecret, 7, models.RoleMember, time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"wrong secret", signToken(t, []byte("other"), 7, models.RoleMember, time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, do(r, "/private", tt.token).Code)
		})
	}
}

func TestAuthMiddleware_RequiresBearerScheme(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", signToken(t, testSecret, 7, models.RoleMember, time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Bearer token required")
}

func TestOptionalAuth(t *testing.T) {
	r := newRouter()

	w := do(r, "/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)

	w = do(r, "/optional", "broken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)

	w = do(r, "/optional", signToken(t, testSecret, 9, models.RoleMember, time.Now().Add(time.Hour)))
	assert.Contains(t, w.Body.String(), `"id":9`)
}

func TestRequireRole(t *testing.T) {
	r := newRouter()

	member := signToken(t, testSecret, 3, models.RoleMember, time.Now().Add(time.Hour))
	admin := signToken(t, testSecret, 4, models.RoleAdmin, time.Now().Add(time.Hour))

	assert.Equal(t, http.StatusForbidden, do(r, "/admin", member).Code)
	assert.Equal(t, http.StatusOK, do(r, "/admin", admin).Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

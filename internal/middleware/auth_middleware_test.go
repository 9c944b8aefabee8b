package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "facultydesk-test",
	})
}

func newTestRouter(m *AuthMiddleware, requiredRole models.RoleType) *gin.Engine {
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), m.RoleRequired(requiredRole), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := newTestRouter(NewAuthMiddleware(jwtService), models.RoleAdmin)

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCode(t, w))
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router := newTestRouter(NewAuthMiddleware(jwtService), models.RoleAdmin)

	w := doRequest(router, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, errorCode(t, w))
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := newTestJWTService(-time.Hour)
	token, _, err := expired.GenerateToken(models.RoleAdmin, 0)
	require.NoError(t, err)

	router := newTestRouter(NewAuthMiddleware(newTestJWTService(time.Hour)), models.RoleAdmin)
	w := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, errorCode(t, w))
}

func TestJWTAuth_WrongSigningKey(t *testing.T) {
	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "another-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "facultydesk-test",
	})
	token, _, err := other.GenerateToken(models.RoleAdmin, 0)
	require.NoError(t, err)

	router := newTestRouter(NewAuthMiddleware(newTestJWTService(time.Hour)), models.RoleAdmin)
	w := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, errorCode(t, w))
}

func TestRoleRequired_WrongRole(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	token, _, err := jwtService.GenerateToken(models.RoleFaculty, 5)
	require.NoError(t, err)

	router := newTestRouter(NewAuthMiddleware(jwtService), models.RoleAdmin)
	w := doRequest(router, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, errorCode(t, w))
}

func TestRoleRequired_MatchingRole(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	token, _, err := jwtService.GenerateToken(models.RoleAdmin, 0)
	require.NoError(t, err)

	router := newTestRouter(NewAuthMiddleware(jwtService), models.RoleAdmin)
	w := doRequest(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetFacultyID(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(jwtService)

	var gotID int64
	router := gin.New()
	router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		facultyID, ok := GetFacultyID(c)
		if !ok {
			return
		}
		gotID = facultyID
		c.Status(http.StatusOK)
	})

	token, _, err := jwtService.GenerateToken(models.RoleFaculty, 7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), gotID)

	// An admin token carries no faculty identity
	adminToken, _, err := jwtService.GenerateToken(models.RoleAdmin, 0)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCode(t, w))
}

package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthService struct {
	adminErr   error
	facultyErr error
	facultyID  int64
}

func (s *stubAuthService) AdminLogin(_ context.Context, username, password string) (*dto.LoginResponse, error) {
	if s.adminErr != nil {
		return nil, s.adminErr
	}
	return &dto.LoginResponse{AccessToken: "token", TokenType: "Bearer", Role: "ADMIN"}, nil
}

func (s *stubAuthService) FacultyLogin(_ context.Context, facultyID int64, phone string) (*dto.LoginResponse, error) {
	if s.facultyErr != nil {
		return nil, s.facultyErr
	}
	s.facultyID = facultyID
	return &dto.LoginResponse{AccessToken: "token", TokenType: "Bearer", Role: "FACULTY", FacultyID: facultyID}, nil
}

func authRouter(svc AuthService) *gin.Engine {
	router := gin.New()
	controller := NewAuthController(svc)
	router.POST("/auth/admin/login", controller.AdminLogin)
	router.POST("/auth/login", controller.FacultyLogin)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminLogin_Endpoint(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := postJSON(router, "/auth/admin/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.Equal(t, "ADMIN", resp.Data.Role)
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	router := authRouter(&stubAuthService{adminErr: apperrors.ErrInvalidCredentials})

	w := postJSON(router, "/auth/admin/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, resp.Error.Code)
}

func TestAdminLogin_MissingFields(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := postJSON(router, "/auth/admin/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFacultyLogin_Endpoint(t *testing.T) {
	svc := &stubAuthService{}
	router := authRouter(svc)

	w := postJSON(router, "/auth/login", `{"facultyId":5,"phone":"9876543210"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), svc.facultyID)
}

func TestFacultyLogin_BadRequests(t *testing.T) {
	router := authRouter(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing phone", `{"facultyId":5}`},
		{"zero faculty id", `{"facultyId":0,"phone":"9876543210"}`},
		{"not json", `faculty=5`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(router, "/auth/login", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

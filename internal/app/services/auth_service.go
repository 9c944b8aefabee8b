package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/models/dto"
	"github.com/karthik/facultydesk/internal/config"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
	"github.com/karthik/facultydesk/internal/pkg/auth"
)

// AuthService handles admin and faculty logins and token issuing
type AuthService struct {
	facultyRepo FacultyRepository
	jwtService  *auth.JWTService
	adminCfg    config.AdminConfig
}

// NewAuthService creates a new authentication service instance
func NewAuthService(facultyRepo FacultyRepository, jwtService *auth.JWTService, adminCfg config.AdminConfig) *AuthService {
	return &AuthService{
		facultyRepo: facultyRepo,
		jwtService:  jwtService,
		adminCfg:    adminCfg,
	}
}

// AdminLogin checks the supplied credentials against the configured admin
// account and issues an ADMIN token
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.adminCfg.Username)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.checkAdminPassword(password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(models.RoleAdmin, 0)
	if err != nil {
		return nil, fmt.Errorf("error generating admin token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Role:        string(models.RoleAdmin),
	}, nil
}

// checkAdminPassword supports both a bcrypt hash and a plain password in the
// configuration; the latter is compared in constant time
func (s *AuthService) checkAdminPassword(password string) bool {
	configured := s.adminCfg.Password
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(password)) == 1
}

// FacultyLogin authenticates a faculty member by id and registered phone
// number (primary or secondary) and issues a FACULTY token
func (s *AuthService) FacultyLogin(ctx context.Context, facultyID int64, phone string) (*dto.LoginResponse, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving faculty for login: %w", err)
	}

	if !phoneMatches(faculty, phone) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(models.RoleFaculty, faculty.ID)
	if err != nil {
		return nil, fmt.Errorf("error generating faculty token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Role:        string(models.RoleFaculty),
		FacultyID:   faculty.ID,
	}, nil
}

func phoneMatches(faculty *models.Faculty, phone string) bool {
	if phone == "" {
		return false
	}
	if faculty.Phone != nil && *faculty.Phone == phone {
		return true
	}
	if faculty.AltPhone != nil && *faculty.AltPhone == phone {
		return true
	}
	return false
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
	"github.com/karthik/facultydesk/internal/pkg/validation"
)

// FacultyService handles faculty member operations
type FacultyService struct {
	facultyRepo  FacultyRepository
	subjectRepo  SubjectRepository
	activityRepo ActivityRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo FacultyRepository, subjectRepo SubjectRepository, activityRepo ActivityRepository) *FacultyService {
	return &FacultyService{
		facultyRepo:  facultyRepo,
		subjectRepo:  subjectRepo,
		activityRepo: activityRepo,
	}
}

// validateFaculty checks field shapes before touching the database
func (s *FacultyService) validateFaculty(faculty *models.Faculty) error {
	if faculty == nil {
		return apperrors.NewValidationError("faculty is nil")
	}
	if strings.TrimSpace(faculty.FirstName) == "" {
		return apperrors.NewValidationError("first name cannot be empty")
	}
	if !validation.IsValidEmail(faculty.Email) {
		return apperrors.NewValidationError("invalid email address")
	}
	if faculty.Phone != nil && !validation.IsValidPhone(*faculty.Phone) {
		return apperrors.NewValidationError("invalid phone number")
	}
	if faculty.AltPhone != nil && !validation.IsValidPhone(*faculty.AltPhone) {
		return apperrors.NewValidationError("invalid secondary phone number")
	}
	return nil
}

// checkUniqueness enforces unique email and phone numbers across the faculty
// table, ignoring the row identified by excludeID (0 for creates)
func (s *FacultyService) checkUniqueness(ctx context.Context, faculty *models.Faculty, excludeID int64) error {
	taken, err := s.facultyRepo.EmailExists(ctx, faculty.Email, excludeID)
	if err != nil {
		return fmt.Errorf("error checking email uniqueness: %w", err)
	}
	if taken {
		return apperrors.ErrEmailTaken
	}

	for _, phone := range []*string{faculty.Phone, faculty.AltPhone} {
		if phone == nil {
			continue
		}
		taken, err := s.facultyRepo.PhoneExists(ctx, *phone, excludeID)
		if err != nil {
			return fmt.Errorf("error checking phone uniqueness: %w", err)
		}
		if taken {
			return apperrors.ErrPhoneTaken
		}
	}

	return nil
}

// CreateFaculty validates and inserts a new faculty member
func (s *FacultyService) CreateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if err := s.validateFaculty(faculty); err != nil {
		return err
	}
	if err := s.checkUniqueness(ctx, faculty, 0); err != nil {
		return err
	}
	return s.facultyRepo.Create(ctx, faculty)
}

// GetFacultyByID retrieves a faculty member by ID
func (s *FacultyService) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid faculty ID")
	}
	return s.facultyRepo.GetByID(ctx, id)
}

// GetAllFaculty retrieves all faculty members
func (s *FacultyService) GetAllFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx)
}

// UpdateFaculty validates and updates an existing faculty member. The
// uniqueness checks skip the row being updated so a faculty keeps its own
// email and phone.
func (s *FacultyService) UpdateFaculty(ctx context.Context, faculty *models.Faculty) error {
	if faculty == nil || faculty.ID <= 0 {
		return apperrors.NewValidationError("invalid faculty ID")
	}
	if err := s.validateFaculty(faculty); err != nil {
		return err
	}
	if err := s.checkUniqueness(ctx, faculty, faculty.ID); err != nil {
		return err
	}
	return s.facultyRepo.Update(ctx, faculty)
}

// DeleteFaculty deletes a faculty member, refusing while the member still
// owns subjects or activities
func (s *FacultyService) DeleteFaculty(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid faculty ID")
	}

	if _, err := s.facultyRepo.GetByID(ctx, id); err != nil {
		return err
	}

	subjects, err := s.subjectRepo.CountByFacultyID(ctx, id)
	if err != nil {
		return fmt.Errorf("error counting subjects for faculty: %w", err)
	}
	activities, err := s.activityRepo.CountByFacultyID(ctx, id)
	if err != nil {
		return fmt.Errorf("error counting activities for faculty: %w", err)
	}
	if subjects > 0 || activities > 0 {
		return apperrors.ErrFacultyInUse
	}

	return s.facultyRepo.Delete(ctx, id)
}

package services

import (
	"context"
	"strings"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
	"github.com/karthik/facultydesk/internal/pkg/validation"
)

// SubjectService handles subject operations
type SubjectService struct {
	subjectRepo SubjectRepository
	facultyRepo FacultyRepository
	yearRepo    AcademicYearRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo SubjectRepository, facultyRepo FacultyRepository, yearRepo AcademicYearRepository) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		facultyRepo: facultyRepo,
		yearRepo:    yearRepo,
	}
}

// validateSubject checks the fields and resolves the optional references
func (s *SubjectService) validateSubject(ctx context.Context, subject *models.Subject) error {
	if strings.TrimSpace(subject.SubjectName) == "" {
		return apperrors.NewValidationError("subject name cannot be empty")
	}
	if subject.FacultyID != nil {
		if _, err := s.facultyRepo.GetByID(ctx, *subject.FacultyID); err != nil {
			return err
		}
	}
	if subject.AcademicYearID != nil {
		if _, err := s.yearRepo.GetByID(ctx, *subject.AcademicYearID); err != nil {
			return err
		}
	}
	return nil
}

// CreateSubject validates and inserts a new subject keyed by course code
func (s *SubjectService) CreateSubject(ctx context.Context, subject *models.Subject) error {
	if !validation.IsValidCourseCode(subject.CourseCode) {
		return apperrors.NewValidationError("invalid course code")
	}
	if err := s.validateSubject(ctx, subject); err != nil {
		return err
	}
	return s.subjectRepo.Create(ctx, subject)
}

// GetSubjectByCode retrieves a subject with its relations
func (s *SubjectService) GetSubjectByCode(ctx context.Context, courseCode string) (*models.Subject, error) {
	if strings.TrimSpace(courseCode) == "" {
		return nil, apperrors.NewValidationError("course code is required")
	}
	return s.subjectRepo.GetByCode(ctx, courseCode)
}

// GetAllSubjects retrieves all subjects with relations ordered by course code
func (s *SubjectService) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

// GetSubjectsByFacultyID retrieves the subjects assigned to one faculty
func (s *SubjectService) GetSubjectsByFacultyID(ctx context.Context, facultyID int64) ([]*models.Subject, error) {
	if facultyID <= 0 {
		return nil, apperrors.NewValidationError("invalid faculty ID")
	}
	return s.subjectRepo.GetByFacultyID(ctx, facultyID)
}

// UpdateSubject validates and updates an existing subject
func (s *SubjectService) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	if strings.TrimSpace(subject.CourseCode) == "" {
		return apperrors.NewValidationError("course code is required")
	}
	if err := s.validateSubject(ctx, subject); err != nil {
		return err
	}
	return s.subjectRepo.Update(ctx, subject)
}

// DeleteSubject deletes a subject by course code
func (s *SubjectService) DeleteSubject(ctx context.Context, courseCode string) error {
	if strings.TrimSpace(courseCode) == "" {
		return apperrors.NewValidationError("course code is required")
	}
	return s.subjectRepo.Delete(ctx, courseCode)
}

package services

import (
	"context"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

// AppraisalService handles faculty appraisal operations
type AppraisalService struct {
	appraisalRepo AppraisalRepository
	facultyRepo   FacultyRepository
	yearRepo      AcademicYearRepository
}

// NewAppraisalService creates a new appraisal service instance
func NewAppraisalService(appraisalRepo AppraisalRepository, facultyRepo FacultyRepository, yearRepo AcademicYearRepository) *AppraisalService {
	return &AppraisalService{
		appraisalRepo: appraisalRepo,
		facultyRepo:   facultyRepo,
		yearRepo:      yearRepo,
	}
}

func (s *AppraisalService) checkReferences(ctx context.Context, appraisal *models.Appraisal) error {
	if _, err := s.facultyRepo.GetByID(ctx, appraisal.FacultyID); err != nil {
		return err
	}
	if _, err := s.yearRepo.GetByID(ctx, appraisal.AcademicYearID); err != nil {
		return err
	}
	return nil
}

// CreateAppraisal validates references and inserts a new appraisal
func (s *AppraisalService) CreateAppraisal(ctx context.Context, appraisal *models.Appraisal) error {
	if appraisal.FacultyID <= 0 || appraisal.AcademicYearID <= 0 {
		return apperrors.NewValidationError("faculty and academic year references are required")
	}
	if err := s.checkReferences(ctx, appraisal); err != nil {
		return err
	}
	return s.appraisalRepo.Create(ctx, appraisal)
}

// GetAppraisalByID retrieves a single appraisal; used by the edit form to
// populate its fields
func (s *AppraisalService) GetAppraisalByID(ctx context.Context, id int64) (*models.Appraisal, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid appraisal ID")
	}
	return s.appraisalRepo.GetByID(ctx, id)
}

// GetAllAppraisals retrieves all appraisals with relations, newest first
func (s *AppraisalService) GetAllAppraisals(ctx context.Context) ([]*models.Appraisal, error) {
	return s.appraisalRepo.GetAll(ctx)
}

// UpdateAppraisal validates references and updates an existing appraisal
func (s *AppraisalService) UpdateAppraisal(ctx context.Context, appraisal *models.Appraisal) error {
	if appraisal.ID <= 0 {
		return apperrors.NewValidationError("invalid appraisal ID")
	}
	if appraisal.FacultyID <= 0 || appraisal.AcademicYearID <= 0 {
		return apperrors.NewValidationError("faculty and academic year references are required")
	}
	if err := s.checkReferences(ctx, appraisal); err != nil {
		return err
	}
	return s.appraisalRepo.Update(ctx, appraisal)
}

// DeleteAppraisal deletes an appraisal by ID
func (s *AppraisalService) DeleteAppraisal(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid appraisal ID")
	}
	return s.appraisalRepo.Delete(ctx, id)
}

package services

import (
	"context"
	"fmt"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
	"github.com/karthik/facultydesk/internal/pkg/validation"
)

// AcademicYearService handles academic year operations
type AcademicYearService struct {
	yearRepo AcademicYearRepository
}

// NewAcademicYearService creates a new academic year service instance
func NewAcademicYearService(yearRepo AcademicYearRepository) *AcademicYearService {
	return &AcademicYearService{
		yearRepo: yearRepo,
	}
}

// CreateAcademicYear validates and inserts a new academic year
func (s *AcademicYearService) CreateAcademicYear(ctx context.Context, year *models.AcademicYear) error {
	if !validation.IsValidYearRange(year.YearStart, year.YearEnd) {
		return apperrors.NewValidationError("invalid academic year range")
	}

	exists, err := s.yearRepo.ExistsByRange(ctx, year.YearStart, year.YearEnd)
	if err != nil {
		return fmt.Errorf("error checking academic year range: %w", err)
	}
	if exists {
		return apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "academic year with this range already exists")
	}

	return s.yearRepo.Create(ctx, year)
}

// GetAcademicYearByID retrieves an academic year by ID
func (s *AcademicYearService) GetAcademicYearByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid academic year ID")
	}
	return s.yearRepo.GetByID(ctx, id)
}

// GetAllAcademicYears retrieves all academic years, newest first
func (s *AcademicYearService) GetAllAcademicYears(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.yearRepo.GetAll(ctx)
}

// UpdateAcademicYear validates and updates an existing academic year
func (s *AcademicYearService) UpdateAcademicYear(ctx context.Context, year *models.AcademicYear) error {
	if year.ID <= 0 {
		return apperrors.NewValidationError("invalid academic year ID")
	}
	if !validation.IsValidYearRange(year.YearStart, year.YearEnd) {
		return apperrors.NewValidationError("invalid academic year range")
	}
	return s.yearRepo.Update(ctx, year)
}

// DeleteAcademicYear deletes an academic year by ID
func (s *AcademicYearService) DeleteAcademicYear(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid academic year ID")
	}
	return s.yearRepo.Delete(ctx, id)
}

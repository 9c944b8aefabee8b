package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

// ActivityTypeService handles activity type operations
type ActivityTypeService struct {
	typeRepo ActivityTypeRepository
}

// NewActivityTypeService creates a new activity type service instance
func NewActivityTypeService(typeRepo ActivityTypeRepository) *ActivityTypeService {
	return &ActivityTypeService{
		typeRepo: typeRepo,
	}
}

// CreateActivityType validates and inserts a new activity type with a unique
// name
func (s *ActivityTypeService) CreateActivityType(ctx context.Context, activityType *models.ActivityType) error {
	if strings.TrimSpace(activityType.Name) == "" {
		return apperrors.NewValidationError("activity type name cannot be empty")
	}

	exists, err := s.typeRepo.NameExists(ctx, activityType.Name, 0)
	if err != nil {
		return fmt.Errorf("error checking activity type name: %w", err)
	}
	if exists {
		return apperrors.ErrActivityTypeExists
	}

	return s.typeRepo.Create(ctx, activityType)
}

// GetActivityTypeByID retrieves an activity type by ID
func (s *ActivityTypeService) GetActivityTypeByID(ctx context.Context, id int64) (*models.ActivityType, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid activity type ID")
	}
	return s.typeRepo.GetByID(ctx, id)
}

// GetAllActivityTypes retrieves all activity types ordered by name
func (s *ActivityTypeService) GetAllActivityTypes(ctx context.Context) ([]*models.ActivityType, error) {
	return s.typeRepo.GetAll(ctx)
}

// UpdateActivityType validates and updates an existing activity type
func (s *ActivityTypeService) UpdateActivityType(ctx context.Context, activityType *models.ActivityType) error {
	if activityType.ID <= 0 {
		return apperrors.NewValidationError("invalid activity type ID")
	}
	if strings.TrimSpace(activityType.Name) == "" {
		return apperrors.NewValidationError("activity type name cannot be empty")
	}

	exists, err := s.typeRepo.NameExists(ctx, activityType.Name, activityType.ID)
	if err != nil {
		return fmt.Errorf("error checking activity type name: %w", err)
	}
	if exists {
		return apperrors.ErrActivityTypeExists
	}

	return s.typeRepo.Update(ctx, activityType)
}

// DeleteActivityType deletes an activity type by ID. Activities referencing
// the type are removed with it by the schema.
func (s *ActivityTypeService) DeleteActivityType(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid activity type ID")
	}
	return s.typeRepo.Delete(ctx, id)
}

package services

import (
	"context"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

// ActivityService handles faculty activity operations
type ActivityService struct {
	activityRepo ActivityRepository
	facultyRepo  FacultyRepository
	yearRepo     AcademicYearRepository
	typeRepo     ActivityTypeRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService(activityRepo ActivityRepository, facultyRepo FacultyRepository, yearRepo AcademicYearRepository, typeRepo ActivityTypeRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		facultyRepo:  facultyRepo,
		yearRepo:     yearRepo,
		typeRepo:     typeRepo,
	}
}

// checkReferences ensures all three required references resolve before any
// row is written
func (s *ActivityService) checkReferences(ctx context.Context, activity *models.Activity) error {
	if _, err := s.facultyRepo.GetByID(ctx, activity.FacultyID); err != nil {
		return err
	}
	if _, err := s.yearRepo.GetByID(ctx, activity.AcademicYearID); err != nil {
		return err
	}
	if _, err := s.typeRepo.GetByID(ctx, activity.ActivityTypeID); err != nil {
		return err
	}
	return nil
}

// CreateActivity validates references and inserts a new activity
func (s *ActivityService) CreateActivity(ctx context.Context, activity *models.Activity) error {
	if activity.FacultyID <= 0 || activity.AcademicYearID <= 0 || activity.ActivityTypeID <= 0 {
		return apperrors.NewValidationError("faculty, academic year and activity type references are required")
	}
	if err := s.checkReferences(ctx, activity); err != nil {
		return err
	}
	return s.activityRepo.Create(ctx, activity)
}

// CreateOwnActivity inserts an activity on behalf of the authenticated
// faculty member, overriding whatever faculty reference the request carried
func (s *ActivityService) CreateOwnActivity(ctx context.Context, activity *models.Activity, facultyID int64) error {
	activity.FacultyID = facultyID
	return s.CreateActivity(ctx, activity)
}

// GetActivityByID retrieves an activity with its relations
func (s *ActivityService) GetActivityByID(ctx context.Context, id int64) (*models.Activity, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid activity ID")
	}
	return s.activityRepo.GetByID(ctx, id)
}

// GetAllActivities retrieves all activities with relations, newest first
func (s *ActivityService) GetAllActivities(ctx context.Context) ([]*models.Activity, error) {
	return s.activityRepo.GetAll(ctx)
}

// GetActivitiesByFacultyID retrieves one faculty member's activities
func (s *ActivityService) GetActivitiesByFacultyID(ctx context.Context, facultyID int64) ([]*models.Activity, error) {
	if facultyID <= 0 {
		return nil, apperrors.NewValidationError("invalid faculty ID")
	}
	return s.activityRepo.GetByFacultyID(ctx, facultyID)
}

// UpdateActivity validates references and updates an existing activity
func (s *ActivityService) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	if activity.ID <= 0 {
		return apperrors.NewValidationError("invalid activity ID")
	}
	if activity.FacultyID <= 0 || activity.AcademicYearID <= 0 || activity.ActivityTypeID <= 0 {
		return apperrors.NewValidationError("faculty, academic year and activity type references are required")
	}
	if err := s.checkReferences(ctx, activity); err != nil {
		return err
	}
	return s.activityRepo.Update(ctx, activity)
}

// UpdateOwnActivity updates an activity for the authenticated faculty member.
// An activity owned by a different faculty is left untouched and the call
// fails with an ownership error.
func (s *ActivityService) UpdateOwnActivity(ctx context.Context, activity *models.Activity, facultyID int64) error {
	existing, err := s.activityRepo.GetByID(ctx, activity.ID)
	if err != nil {
		return err
	}
	if existing.FacultyID != facultyID {
		return apperrors.ErrNotActivityOwner
	}

	activity.FacultyID = facultyID
	return s.UpdateActivity(ctx, activity)
}

// DeleteActivity deletes an activity by ID
func (s *ActivityService) DeleteActivity(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid activity ID")
	}
	return s.activityRepo.Delete(ctx, id)
}

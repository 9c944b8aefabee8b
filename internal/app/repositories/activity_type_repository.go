package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
	"github.com/karthik/facultydesk/internal/pkg/dberrors"
)

// ActivityTypeRepository handles database operations for activity types
type ActivityTypeRepository struct {
	db *pgxpool.Pool
}

// NewActivityTypeRepository creates a new activity type repository
func NewActivityTypeRepository(db *pgxpool.Pool) *ActivityTypeRepository {
	return &ActivityTypeRepository{
		db: db,
	}
}

// Create inserts a new activity type and fills in the generated id
func (r *ActivityTypeRepository) Create(ctx context.Context, activityType *models.ActivityType) error {
	query := `
		INSERT INTO activity_types (name, category)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, activityType.Name, activityType.Category).Scan(&activityType.ID)
	if err != nil {
		if dberrors.IsDuplicateError(err) {
			return apperrors.ErrActivityTypeExists
		}
		return fmt.Errorf("error creating activity type: %w", err)
	}

	return nil
}

// GetByID retrieves an activity type by ID
func (r *ActivityTypeRepository) GetByID(ctx context.Context, id int64) (*models.ActivityType, error) {
	query := `
		SELECT id, name, category
		FROM activity_types
		WHERE id = $1
	`

	var activityType models.ActivityType
	err := r.db.QueryRow(ctx, query, id).Scan(&activityType.ID, &activityType.Name, &activityType.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrActivityTypeNotFound
		}
		return nil, fmt.Errorf("error retrieving activity type: %w", err)
	}

	return &activityType, nil
}

// GetAll retrieves all activity types ordered by name
func (r *ActivityTypeRepository) GetAll(ctx context.Context) ([]*models.ActivityType, error) {
	query := `
		SELECT id, name, category
		FROM activity_types
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.ActivityType
	for rows.Next() {
		var activityType models.ActivityType
		if err := rows.Scan(&activityType.ID, &activityType.Name, &activityType.Category); err != nil {
			return nil, err
		}
		types = append(types, &activityType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// NameExists checks whether a type name is used by a row other than excludeID
func (r *ActivityTypeRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM activity_types WHERE name = $1 AND id != $2)`,
		name, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking activity type name: %w", err)
	}

	return exists, nil
}

// Update updates an existing activity type
func (r *ActivityTypeRepository) Update(ctx context.Context, activityType *models.ActivityType) error {
	query := `
		UPDATE activity_types
		SET name = $1, category = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, activityType.Name, activityType.Category, activityType.ID)
	if err != nil {
		if dberrors.IsDuplicateError(err) {
			return apperrors.ErrActivityTypeExists
		}
		return fmt.Errorf("error updating activity type: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrActivityTypeNotFound
	}

	return nil
}

// Delete deletes an activity type by ID; referencing activities are cascaded
func (r *ActivityTypeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM activity_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting activity type: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrActivityTypeNotFound
	}

	return nil
}

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
	"github.com/karthik/facultydesk/internal/pkg/helpers"
)

// TypeCount pairs an activity type name with the number of activities of that
// type, used for the faculty dashboard distribution.
type TypeCount struct {
	Name  string
	Count int
}

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// joined select list shared by the list queries; relations carry only the
// columns needed for display.
const activityJoinedSelect = `
	SELECT a.id, a.name, a.title, a.date, a.description,
	       a.faculty_id, a.academic_year_id, a.activity_type_id,
	       f.first_name, f.last_name,
	       y.year_start, y.year_end,
	       t.name, t.category
	FROM activities a
	JOIN faculty f ON a.faculty_id = f.id
	JOIN academic_years y ON a.academic_year_id = y.id
	JOIN activity_types t ON a.activity_type_id = t.id
`

func scanJoinedActivity(rows pgx.Rows) (*models.Activity, error) {
	var (
		activity models.Activity
		faculty  models.Faculty
		year     models.AcademicYear
		atype    models.ActivityType
	)
	if err := rows.Scan(
		&activity.ID,
		&activity.Name,
		&activity.Title,
		&activity.Date,
		&activity.Description,
		&activity.FacultyID,
		&activity.AcademicYearID,
		&activity.ActivityTypeID,
		&faculty.FirstName,
		&faculty.LastName,
		&year.YearStart,
		&year.YearEnd,
		&atype.Name,
		&atype.Category,
	); err != nil {
		return nil, err
	}

	faculty.ID = activity.FacultyID
	year.ID = activity.AcademicYearID
	atype.ID = activity.ActivityTypeID
	activity.Faculty = &faculty
	activity.AcademicYear = &year
	activity.ActivityType = &atype

	return &activity, nil
}

// Create inserts a new activity and fills in the generated id. A reference to
// a missing faculty, year or type surfaces as a not-found error and nothing is
// written.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activities (name, title, date, description, faculty_id, academic_year_id, activity_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		activity.Name,
		activity.Title,
		activity.Date,
		helpers.GetNullString(activity.Description),
		activity.FacultyID,
		activity.AcademicYearID,
		activity.ActivityTypeID,
	).Scan(&activity.ID)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating activity: %w", err)
	}

	return nil
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	query := `
		SELECT id, name, title, date, description, faculty_id, academic_year_id, activity_type_id
		FROM activities
		WHERE id = $1
	`

	var activity models.Activity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Title,
		&activity.Date,
		&activity.Description,
		&activity.FacultyID,
		&activity.AcademicYearID,
		&activity.ActivityTypeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("error retrieving activity: %w", err)
	}

	return &activity, nil
}

// GetAll retrieves all activities joined with their relations, newest first
func (r *ActivityRepository) GetAll(ctx context.Context) ([]*models.Activity, error) {
	rows, err := r.db.Query(ctx, activityJoinedSelect+` ORDER BY a.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity, err := scanJoinedActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// GetByFacultyID retrieves one faculty's activities joined with their
// relations, newest first
func (r *ActivityRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Activity, error) {
	rows, err := r.db.Query(ctx, activityJoinedSelect+` WHERE a.faculty_id = $1 ORDER BY a.date DESC`, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity, err := scanJoinedActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// GetRecent retrieves the most recently dated activities joined with their
// relations, for the admin dashboard
func (r *ActivityRepository) GetRecent(ctx context.Context, limit int) ([]*models.Activity, error) {
	rows, err := r.db.Query(ctx, activityJoinedSelect+` ORDER BY a.date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity, err := scanJoinedActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// Update overwrites the editable fields of an existing activity
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) error {
	query := `
		UPDATE activities
		SET name = $1, title = $2, date = $3, description = $4,
		    faculty_id = $5, academic_year_id = $6, activity_type_id = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		activity.Name,
		activity.Title,
		activity.Date,
		helpers.GetNullString(activity.Description),
		activity.FacultyID,
		activity.AcademicYearID,
		activity.ActivityTypeID,
		activity.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error updating activity: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrActivityNotFound
	}

	return nil
}

// Delete deletes an activity by ID
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting activity: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrActivityNotFound
	}

	return nil
}

// Count returns the number of activity rows
func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting activities: %w", err)
	}
	return count, nil
}

// CountByFacultyID returns the number of activities owned by a faculty
func (r *ActivityRepository) CountByFacultyID(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculty activities: %w", err)
	}
	return count, nil
}

// CountByTypeForFaculty returns per-type activity counts for one faculty,
// grouped by activity type name
func (r *ActivityRepository) CountByTypeForFaculty(ctx context.Context, facultyID int64) ([]TypeCount, error) {
	query := `
		SELECT t.name, COUNT(a.id)
		FROM activities a
		JOIN activity_types t ON a.activity_type_id = t.id
		WHERE a.faculty_id = $1
		GROUP BY t.name
		ORDER BY t.name
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []TypeCount
	for rows.Next() {
		var tc TypeCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

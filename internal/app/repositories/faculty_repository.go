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

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

// Create inserts a new faculty row and fills in the generated id
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	query := `
		INSERT INTO faculty (first_name, last_name, date_of_birth, email, phone, alt_phone, department, designation, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		faculty.FirstName,
		faculty.LastName,
		faculty.DateOfBirth,
		faculty.Email,
		helpers.GetNullString(faculty.Phone),
		helpers.GetNullString(faculty.AltPhone),
		faculty.Department,
		faculty.Designation,
		helpers.GetNullTime(faculty.JoinDate),
	).Scan(&faculty.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_email_key") {
			return apperrors.ErrEmailTaken
		}
		if dberrors.IsDuplicateError(err) {
			return apperrors.ErrPhoneTaken
		}
		return fmt.Errorf("error creating faculty: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	query := `
		SELECT id, first_name, last_name, date_of_birth, email, phone, alt_phone, department, designation, join_date
		FROM faculty
		WHERE id = $1
	`

	var faculty models.Faculty
	err := r.db.QueryRow(ctx, query, id).Scan(
		&faculty.ID,
		&faculty.FirstName,
		&faculty.LastName,
		&faculty.DateOfBirth,
		&faculty.Email,
		&faculty.Phone,
		&faculty.AltPhone,
		&faculty.Department,
		&faculty.Designation,
		&faculty.JoinDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return &faculty, nil
}

// GetAll retrieves all faculty members ordered by id
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	query := `
		SELECT id, first_name, last_name, date_of_birth, email, phone, alt_phone, department, designation, join_date
		FROM faculty
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		var faculty models.Faculty
		if err := rows.Scan(
			&faculty.ID,
			&faculty.FirstName,
			&faculty.LastName,
			&faculty.DateOfBirth,
			&faculty.Email,
			&faculty.Phone,
			&faculty.AltPhone,
			&faculty.Department,
			&faculty.Designation,
			&faculty.JoinDate,
		); err != nil {
			return nil, err
		}
		faculties = append(faculties, &faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faculties, nil
}

// EmailExists checks whether an email is used by a faculty other than excludeID
func (r *FacultyRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM faculty WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking faculty email: %w", err)
	}

	return exists, nil
}

// PhoneExists checks whether a phone number is used, as either primary or
// secondary number, by a faculty other than excludeID
func (r *FacultyRepository) PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM faculty WHERE (phone = $1 OR alt_phone = $1) AND id != $2)`,
		phone, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking faculty phone: %w", err)
	}

	return exists, nil
}

// Update overwrites the editable fields of an existing faculty row
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	query := `
		UPDATE faculty
		SET first_name = $1, last_name = $2, date_of_birth = $3, email = $4,
		    phone = $5, alt_phone = $6, department = $7, designation = $8, join_date = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		faculty.FirstName,
		faculty.LastName,
		faculty.DateOfBirth,
		faculty.Email,
		helpers.GetNullString(faculty.Phone),
		helpers.GetNullString(faculty.AltPhone),
		faculty.Department,
		faculty.Designation,
		helpers.GetNullTime(faculty.JoinDate),
		faculty.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_email_key") {
			return apperrors.ErrEmailTaken
		}
		if dberrors.IsDuplicateError(err) {
			return apperrors.ErrPhoneTaken
		}
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete deletes a faculty member by ID. Ownership guards live in the service
// layer; at this level a delete cascades to the faculty's activities.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Count returns the number of faculty rows
func (r *FacultyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faculty`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting faculty: %w", err)
	}
	return count, nil
}

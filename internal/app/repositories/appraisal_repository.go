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

// AppraisalRepository handles database operations for appraisals
type AppraisalRepository struct {
	db *pgxpool.Pool
}

// NewAppraisalRepository creates a new appraisal repository
func NewAppraisalRepository(db *pgxpool.Pool) *AppraisalRepository {
	return &AppraisalRepository{
		db: db,
	}
}

const appraisalJoinedSelect = `
	SELECT p.id, p.faculty_id, p.academic_year_id, p.date, p.rating, p.status, p.comments,
	       f.first_name, f.last_name,
	       y.year_start, y.year_end
	FROM appraisals p
	JOIN faculty f ON p.faculty_id = f.id
	JOIN academic_years y ON p.academic_year_id = y.id
`

// Create inserts a new appraisal and fills in the generated id
func (r *AppraisalRepository) Create(ctx context.Context, appraisal *models.Appraisal) error {
	query := `
		INSERT INTO appraisals (faculty_id, academic_year_id, date, rating, status, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		appraisal.FacultyID,
		appraisal.AcademicYearID,
		appraisal.Date,
		appraisal.Rating,
		appraisal.Status,
		helpers.GetNullString(appraisal.Comments),
	).Scan(&appraisal.ID)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating appraisal: %w", err)
	}

	return nil
}

// GetByID retrieves an appraisal by ID. Used by the edit-form JSON endpoint,
// so it returns the bare row without relations.
func (r *AppraisalRepository) GetByID(ctx context.Context, id int64) (*models.Appraisal, error) {
	query := `
		SELECT id, faculty_id, academic_year_id, date, rating, status, comments
		FROM appraisals
		WHERE id = $1
	`

	var appraisal models.Appraisal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appraisal.ID,
		&appraisal.FacultyID,
		&appraisal.AcademicYearID,
		&appraisal.Date,
		&appraisal.Rating,
		&appraisal.Status,
		&appraisal.Comments,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAppraisalNotFound
		}
		return nil, fmt.Errorf("error retrieving appraisal: %w", err)
	}

	return &appraisal, nil
}

// GetAll retrieves all appraisals joined with faculty and year, newest first
func (r *AppraisalRepository) GetAll(ctx context.Context) ([]*models.Appraisal, error) {
	rows, err := r.db.Query(ctx, appraisalJoinedSelect+` ORDER BY p.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appraisals []*models.Appraisal
	for rows.Next() {
		var (
			appraisal models.Appraisal
			faculty   models.Faculty
			year      models.AcademicYear
		)
		if err := rows.Scan(
			&appraisal.ID,
			&appraisal.FacultyID,
			&appraisal.AcademicYearID,
			&appraisal.Date,
			&appraisal.Rating,
			&appraisal.Status,
			&appraisal.Comments,
			&faculty.FirstName,
			&faculty.LastName,
			&year.YearStart,
			&year.YearEnd,
		); err != nil {
			return nil, err
		}

		faculty.ID = appraisal.FacultyID
		year.ID = appraisal.AcademicYearID
		appraisal.Faculty = &faculty
		appraisal.AcademicYear = &year
		appraisals = append(appraisals, &appraisal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appraisals, nil
}

// GetByFacultyID retrieves all appraisals for one faculty, newest first
func (r *AppraisalRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Appraisal, error) {
	query := `
		SELECT id, faculty_id, academic_year_id, date, rating, status, comments
		FROM appraisals
		WHERE faculty_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appraisals []*models.Appraisal
	for rows.Next() {
		var appraisal models.Appraisal
		if err := rows.Scan(
			&appraisal.ID,
			&appraisal.FacultyID,
			&appraisal.AcademicYearID,
			&appraisal.Date,
			&appraisal.Rating,
			&appraisal.Status,
			&appraisal.Comments,
		); err != nil {
			return nil, err
		}
		appraisals = append(appraisals, &appraisal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appraisals, nil
}

// Update overwrites the editable fields of an existing appraisal
func (r *AppraisalRepository) Update(ctx context.Context, appraisal *models.Appraisal) error {
	query := `
		UPDATE appraisals
		SET faculty_id = $1, academic_year_id = $2, date = $3, rating = $4, status = $5, comments = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		appraisal.FacultyID,
		appraisal.AcademicYearID,
		appraisal.Date,
		appraisal.Rating,
		appraisal.Status,
		helpers.GetNullString(appraisal.Comments),
		appraisal.ID,
	)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error updating appraisal: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAppraisalNotFound
	}

	return nil
}

// Delete deletes an appraisal by ID
func (r *AppraisalRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM appraisals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting appraisal: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAppraisalNotFound
	}

	return nil
}

// Count returns the number of appraisal rows
func (r *AppraisalRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appraisals`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting appraisals: %w", err)
	}
	return count, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

// AcademicYearRepository handles database operations for academic years
type AcademicYearRepository struct {
	db *pgxpool.Pool
}

// NewAcademicYearRepository creates a new academic year repository
func NewAcademicYearRepository(db *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{
		db: db,
	}
}

// Create inserts a new academic year and fills in the generated id
func (r *AcademicYearRepository) Create(ctx context.Context, year *models.AcademicYear) error {
	query := `
		INSERT INTO academic_years (year_start, year_end)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, year.YearStart, year.YearEnd).Scan(&year.ID); err != nil {
		return fmt.Errorf("error creating academic year: %w", err)
	}

	return nil
}

// GetByID retrieves an academic year by ID
func (r *AcademicYearRepository) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	query := `
		SELECT id, year_start, year_end
		FROM academic_years
		WHERE id = $1
	`

	var year models.AcademicYear
	err := r.db.QueryRow(ctx, query, id).Scan(&year.ID, &year.YearStart, &year.YearEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademicYearNotFound
		}
		return nil, fmt.Errorf("error retrieving academic year: %w", err)
	}

	return &year, nil
}

// GetAll retrieves all academic years, most recent first
func (r *AcademicYearRepository) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	query := `
		SELECT id, year_start, year_end
		FROM academic_years
		ORDER BY year_start DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		if err := rows.Scan(&year.ID, &year.YearStart, &year.YearEnd); err != nil {
			return nil, err
		}
		years = append(years, &year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}

// ExistsByRange checks if a year with the same start/end pair already exists
func (r *AcademicYearRepository) ExistsByRange(ctx context.Context, start, end int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM academic_years WHERE year_start = $1 AND year_end = $2)`,
		start, end).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking academic year existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing academic year
func (r *AcademicYearRepository) Update(ctx context.Context, year *models.AcademicYear) error {
	query := `
		UPDATE academic_years
		SET year_start = $1, year_end = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, year.YearStart, year.YearEnd, year.ID)
	if err != nil {
		return fmt.Errorf("error updating academic year: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}

// Delete deletes an academic year by ID. Activities referencing the year are
// removed by the cascade; subject references are cleared.
func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_years WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic year: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}

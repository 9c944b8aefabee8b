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

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Joined select list: faculty and year columns come from LEFT JOINs because
// both assignments are optional.
const subjectJoinedSelect = `
	SELECT s.course_code, s.subject_name, s.faculty_id, s.academic_year_id,
	       f.first_name, f.last_name,
	       y.year_start, y.year_end
	FROM subjects s
	LEFT JOIN faculty f ON s.faculty_id = f.id
	LEFT JOIN academic_years y ON s.academic_year_id = y.id
`

func scanJoinedSubject(rows pgx.Rows) (*models.Subject, error) {
	var (
		subject             models.Subject
		firstName, lastName *string
		yearStart, yearEnd  *int
	)
	if err := rows.Scan(
		&subject.CourseCode,
		&subject.SubjectName,
		&subject.FacultyID,
		&subject.AcademicYearID,
		&firstName,
		&lastName,
		&yearStart,
		&yearEnd,
	); err != nil {
		return nil, err
	}

	if subject.FacultyID != nil && firstName != nil {
		subject.Faculty = &models.Faculty{
			ID:        *subject.FacultyID,
			FirstName: *firstName,
		}
		if lastName != nil {
			subject.Faculty.LastName = *lastName
		}
	}
	if subject.AcademicYearID != nil && yearStart != nil && yearEnd != nil {
		subject.AcademicYear = &models.AcademicYear{
			ID:        *subject.AcademicYearID,
			YearStart: *yearStart,
			YearEnd:   *yearEnd,
		}
	}

	return &subject, nil
}

// Create inserts a new subject row
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (course_code, subject_name, faculty_id, academic_year_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		subject.CourseCode,
		subject.SubjectName,
		helpers.GetNullInt64(subject.FacultyID),
		helpers.GetNullInt64(subject.AcademicYearID),
	)
	if err != nil {
		if dberrors.IsDuplicateError(err) {
			return apperrors.ErrSubjectExists
		}
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByCode retrieves a subject by course code
func (r *SubjectRepository) GetByCode(ctx context.Context, courseCode string) (*models.Subject, error) {
	query := `
		SELECT course_code, subject_name, faculty_id, academic_year_id
		FROM subjects
		WHERE course_code = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, courseCode).Scan(
		&subject.CourseCode,
		&subject.SubjectName,
		&subject.FacultyID,
		&subject.AcademicYearID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// GetAll retrieves all subjects joined with their optional relations, ordered
// by course code
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, subjectJoinedSelect+` ORDER BY s.course_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject, err := scanJoinedSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// GetByFacultyID retrieves all subjects assigned to a faculty
func (r *SubjectRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, subjectJoinedSelect+` WHERE s.faculty_id = $1 ORDER BY s.course_code`, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject, err := scanJoinedSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Update overwrites the editable fields of an existing subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET subject_name = $1, faculty_id = $2, academic_year_id = $3
		WHERE course_code = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		subject.SubjectName,
		helpers.GetNullInt64(subject.FacultyID),
		helpers.GetNullInt64(subject.AcademicYearID),
		subject.CourseCode,
	)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// Delete deletes a subject by course code
func (r *SubjectRepository) Delete(ctx context.Context, courseCode string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE course_code = $1`, courseCode)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// Count returns the number of subject rows
func (r *SubjectRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subjects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return count, nil
}

// CountByFacultyID returns the number of subjects assigned to a faculty
func (r *SubjectRepository) CountByFacultyID(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subjects WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculty subjects: %w", err)
	}
	return count, nil
}

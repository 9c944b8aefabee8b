package services

import (
	"context"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/app/repositories"
)

// Repository interfaces consumed by the services. The pgx implementations in
// the repositories package satisfy them; tests swap in fakes.

// FacultyRepository persists faculty members
type FacultyRepository interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// AcademicYearRepository persists academic years
type AcademicYearRepository interface {
	Create(ctx context.Context, year *models.AcademicYear) error
	GetByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	GetAll(ctx context.Context) ([]*models.AcademicYear, error)
	ExistsByRange(ctx context.Context, start, end int) (bool, error)
	Update(ctx context.Context, year *models.AcademicYear) error
	Delete(ctx context.Context, id int64) error
}

// ActivityTypeRepository persists activity types
type ActivityTypeRepository interface {
	Create(ctx context.Context, activityType *models.ActivityType) error
	GetByID(ctx context.Context, id int64) (*models.ActivityType, error)
	GetAll(ctx context.Context) ([]*models.ActivityType, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, activityType *models.ActivityType) error
	Delete(ctx context.Context, id int64) error
}

// ActivityRepository persists activities
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id int64) (*models.Activity, error)
	GetAll(ctx context.Context) ([]*models.Activity, error)
	GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Activity, error)
	GetRecent(ctx context.Context, limit int) ([]*models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	CountByFacultyID(ctx context.Context, facultyID int64) (int, error)
	CountByTypeForFaculty(ctx context.Context, facultyID int64) ([]repositories.TypeCount, error)
}

// SubjectRepository persists subjects
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByCode(ctx context.Context, courseCode string) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, courseCode string) error
	Count(ctx context.Context) (int, error)
	CountByFacultyID(ctx context.Context, facultyID int64) (int, error)
}

// AppraisalRepository persists appraisals
type AppraisalRepository interface {
	Create(ctx context.Context, appraisal *models.Appraisal) error
	GetByID(ctx context.Context, id int64) (*models.Appraisal, error)
	GetAll(ctx context.Context) ([]*models.Appraisal, error)
	GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Appraisal, error)
	Update(ctx context.Context, appraisal *models.Appraisal) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

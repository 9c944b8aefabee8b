package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyRepository      *FacultyRepository
	AcademicYearRepository *AcademicYearRepository
	ActivityTypeRepository *ActivityTypeRepository
	ActivityRepository     *ActivityRepository
	SubjectRepository      *SubjectRepository
	AppraisalRepository    *AppraisalRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository:      NewFacultyRepository(db),
		AcademicYearRepository: NewAcademicYearRepository(db),
		ActivityTypeRepository: NewActivityTypeRepository(db),
		ActivityRepository:     NewActivityRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		AppraisalRepository:    NewAppraisalRepository(db),
	}
}

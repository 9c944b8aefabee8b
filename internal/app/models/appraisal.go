package models

import "time"

// Appraisal defines a periodic review record for a faculty member within an
// academic year, based on the 'appraisals' table.
type Appraisal struct {
	ID             int64     `json:"id" db:"id"`
	FacultyID      int64     `json:"facultyId" db:"faculty_id"`
	AcademicYearID int64     `json:"academicYearId" db:"academic_year_id"`
	Date           time.Time `json:"date" db:"date"`
	Rating         string    `json:"rating" db:"rating" example:"Excellent"`
	Status         string    `json:"status" db:"status" example:"Completed"`
	Comments       *string   `json:"comments,omitempty" db:"comments"`

	Faculty      *Faculty      `json:"faculty,omitempty"`      // Relation, no db tag
	AcademicYear *AcademicYear `json:"academicYear,omitempty"` // Relation, no db tag
}

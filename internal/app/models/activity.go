package models

import "time"

// Activity defines a dated event attributed to one faculty member, one academic
// year and one activity type, based on the 'activities' table. All three
// references are required; deleting any referenced row cascades to the activity.
type Activity struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Title          string    `json:"title" db:"title"`
	Date           time.Time `json:"date" db:"date"`
	Description    *string   `json:"description,omitempty" db:"description"`
	FacultyID      int64     `json:"facultyId" db:"faculty_id"`
	AcademicYearID int64     `json:"academicYearId" db:"academic_year_id"`
	ActivityTypeID int64     `json:"activityTypeId" db:"activity_type_id"`

	Faculty      *Faculty      `json:"faculty,omitempty"`      // Relation, no db tag
	AcademicYear *AcademicYear `json:"academicYear,omitempty"` // Relation, no db tag
	ActivityType *ActivityType `json:"activityType,omitempty"` // Relation, no db tag
}

package models

// Subject defines a taught course based on the 'subjects' table. The course code
// is the primary identifier. Faculty and academic year assignments are optional
// and are cleared (not cascaded) when the referenced row is deleted.
type Subject struct {
	CourseCode     string `json:"courseCode" db:"course_code" example:"CS501"`
	SubjectName    string `json:"subjectName" db:"subject_name" example:"Operating Systems"`
	FacultyID      *int64 `json:"facultyId,omitempty" db:"faculty_id"`
	AcademicYearID *int64 `json:"academicYearId,omitempty" db:"academic_year_id"`

	Faculty      *Faculty      `json:"faculty,omitempty"`      // Relation, no db tag
	AcademicYear *AcademicYear `json:"academicYear,omitempty"` // Relation, no db tag
}

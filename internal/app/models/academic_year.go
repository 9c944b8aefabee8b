package models

// AcademicYear defines a start/end year pair based on the 'academic_years' table
type AcademicYear struct {
	ID        int64 `json:"id" db:"id"`
	YearStart int   `json:"yearStart" db:"year_start" example:"2024"`
	YearEnd   int   `json:"yearEnd" db:"year_end" example:"2025"`
}

package dto

// CreateAcademicYearRequest represents academic year creation data
type CreateAcademicYearRequest struct {
	YearStart int `json:"yearStart" binding:"required,gt=0"`
	YearEnd   int `json:"yearEnd" binding:"required,gt=0"`
}

// UpdateAcademicYearRequest represents academic year update data
type UpdateAcademicYearRequest = CreateAcademicYearRequest

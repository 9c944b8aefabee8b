package dto

import (
	"fmt"

	"github.com/karthik/facultydesk/internal/app/models"
)

// CreateSubjectRequest represents subject creation data; the faculty and
// academic year assignments are optional
type CreateSubjectRequest struct {
	CourseCode     string `json:"courseCode" binding:"required"`
	SubjectName    string `json:"subjectName" binding:"required"`
	FacultyID      *int64 `json:"facultyId"`
	AcademicYearID *int64 `json:"academicYearId"`
}

// UpdateSubjectRequest represents subject update data; the course code in the
// URL identifies the row
type UpdateSubjectRequest struct {
	SubjectName    string `json:"subjectName" binding:"required"`
	FacultyID      *int64 `json:"facultyId"`
	AcademicYearID *int64 `json:"academicYearId"`
}

// SubjectResponse represents a subject row joined with its optional relations
type SubjectResponse struct {
	CourseCode     string `json:"courseCode"`
	SubjectName    string `json:"subjectName"`
	FacultyID      *int64 `json:"facultyId,omitempty"`
	AcademicYearID *int64 `json:"academicYearId,omitempty"`
	FacultyName    string `json:"facultyName,omitempty"`
	AcademicYear   string `json:"academicYear,omitempty"`
}

// NewSubjectResponse converts a Subject model to its response shape
func NewSubjectResponse(s *models.Subject) SubjectResponse {
	resp := SubjectResponse{
		CourseCode:     s.CourseCode,
		SubjectName:    s.SubjectName,
		FacultyID:      s.FacultyID,
		AcademicYearID: s.AcademicYearID,
	}

	if s.Faculty != nil {
		resp.FacultyName = displayName(s.Faculty.FirstName, s.Faculty.LastName)
	}
	if s.AcademicYear != nil {
		resp.AcademicYear = fmt.Sprintf("%d-%d", s.AcademicYear.YearStart, s.AcademicYear.YearEnd)
	}

	return resp
}

// NewSubjectListResponse converts a slice of Subject models
func NewSubjectListResponse(subjects []*models.Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, NewSubjectResponse(s))
	}
	return out
}

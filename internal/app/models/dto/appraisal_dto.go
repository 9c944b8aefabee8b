package dto

import (
	"fmt"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/helpers"
)

// CreateAppraisalRequest represents appraisal creation data
type CreateAppraisalRequest struct {
	FacultyID      int64   `json:"facultyId" binding:"required,gt=0"`
	AcademicYearID int64   `json:"academicYearId" binding:"required,gt=0"`
	Date           string  `json:"date" binding:"required"`
	Rating         string  `json:"rating"`
	Status         string  `json:"status" binding:"required"`
	Comments       *string `json:"comments"`
}

// UpdateAppraisalRequest represents appraisal update data
type UpdateAppraisalRequest = CreateAppraisalRequest

// ToModel converts the request into an Appraisal model, parsing the date
func (r *CreateAppraisalRequest) ToModel() (*models.Appraisal, error) {
	date, err := helpers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &models.Appraisal{
		FacultyID:      r.FacultyID,
		AcademicYearID: r.AcademicYearID,
		Date:           date,
		Rating:         r.Rating,
		Status:         r.Status,
		Comments:       r.Comments,
	}, nil
}

// AppraisalResponse represents an appraisal row; the flat field set is what
// the client-side edit form consumes
type AppraisalResponse struct {
	ID             int64   `json:"id"`
	FacultyID      int64   `json:"facultyId"`
	AcademicYearID int64   `json:"academicYearId"`
	Date           string  `json:"date"`
	Rating         string  `json:"rating"`
	Status         string  `json:"status"`
	Comments       *string `json:"comments,omitempty"`
	FacultyName    string  `json:"facultyName,omitempty"`
	AcademicYear   string  `json:"academicYear,omitempty"`
}

// NewAppraisalResponse converts an Appraisal model to its response shape
func NewAppraisalResponse(a *models.Appraisal) AppraisalResponse {
	resp := AppraisalResponse{
		ID:             a.ID,
		FacultyID:      a.FacultyID,
		AcademicYearID: a.AcademicYearID,
		Date:           helpers.FormatDate(a.Date),
		Rating:         a.Rating,
		Status:         a.Status,
		Comments:       a.Comments,
	}

	if a.Faculty != nil {
		resp.FacultyName = displayName(a.Faculty.FirstName, a.Faculty.LastName)
	}
	if a.AcademicYear != nil {
		resp.AcademicYear = fmt.Sprintf("%d-%d", a.AcademicYear.YearStart, a.AcademicYear.YearEnd)
	}

	return resp
}

// NewAppraisalListResponse converts a slice of Appraisal models
func NewAppraisalListResponse(appraisals []*models.Appraisal) []AppraisalResponse {
	out := make([]AppraisalResponse, 0, len(appraisals))
	for _, a := range appraisals {
		out = append(out, NewAppraisalResponse(a))
	}
	return out
}

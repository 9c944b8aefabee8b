package dto

import (
	"fmt"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/helpers"
)

// CreateActivityRequest represents activity creation data. FacultyID is
// ignored on the faculty self-service route, where it comes from the token.
type CreateActivityRequest struct {
	Name           string  `json:"name" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	Description    *string `json:"description"`
	FacultyID      int64   `json:"facultyId"`
	AcademicYearID int64   `json:"academicYearId" binding:"required,gt=0"`
	ActivityTypeID int64   `json:"activityTypeId" binding:"required,gt=0"`
}

// UpdateActivityRequest represents activity update data
type UpdateActivityRequest = CreateActivityRequest

// ToModel converts the request into an Activity model, parsing the date
func (r *CreateActivityRequest) ToModel() (*models.Activity, error) {
	date, err := helpers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &models.Activity{
		Name:           r.Name,
		Title:          r.Title,
		Date:           date,
		Description:    r.Description,
		FacultyID:      r.FacultyID,
		AcademicYearID: r.AcademicYearID,
		ActivityTypeID: r.ActivityTypeID,
	}, nil
}

// ActivityResponse represents an activity row joined with its relations for
// display
type ActivityResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Title          string  `json:"title"`
	Date           string  `json:"date"`
	Description    *string `json:"description,omitempty"`
	FacultyID      int64   `json:"facultyId"`
	AcademicYearID int64   `json:"academicYearId"`
	ActivityTypeID int64   `json:"activityTypeId"`
	FacultyName    string  `json:"facultyName,omitempty"`
	AcademicYear   string  `json:"academicYear,omitempty"`
	TypeName       string  `json:"typeName,omitempty"`
	TypeCategory   string  `json:"typeCategory,omitempty"`
}

// NewActivityResponse converts an Activity model (with or without relations
// populated) to its response shape
func NewActivityResponse(a *models.Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:             a.ID,
		Name:           a.Name,
		Title:          a.Title,
		Date:           helpers.FormatDate(a.Date),
		Description:    a.Description,
		FacultyID:      a.FacultyID,
		AcademicYearID: a.AcademicYearID,
		ActivityTypeID: a.ActivityTypeID,
	}

	if a.Faculty != nil {
		resp.FacultyName = displayName(a.Faculty.FirstName, a.Faculty.LastName)
	}
	if a.AcademicYear != nil {
		resp.AcademicYear = fmt.Sprintf("%d-%d", a.AcademicYear.YearStart, a.AcademicYear.YearEnd)
	}
	if a.ActivityType != nil {
		resp.TypeName = a.ActivityType.Name
		resp.TypeCategory = a.ActivityType.Category
	}

	return resp
}

// NewActivityListResponse converts a slice of Activity models
func NewActivityListResponse(activities []*models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, NewActivityResponse(a))
	}
	return out
}

func displayName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}

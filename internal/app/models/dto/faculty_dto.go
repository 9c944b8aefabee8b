package dto

import (
	"time"

	"github.com/karthik/facultydesk/internal/app/models"
	"github.com/karthik/facultydesk/internal/pkg/helpers"
)

// CreateFacultyRequest represents faculty creation data. Dates travel as
// YYYY-MM-DD strings.
type CreateFacultyRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName"`
	DateOfBirth string  `json:"dateOfBirth" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone"`
	AltPhone    *string `json:"altPhone"`
	Department  string  `json:"department" binding:"required"`
	Designation string  `json:"designation" binding:"required"`
	JoinDate    *string `json:"joinDate"`
}

// UpdateFacultyRequest represents faculty update data; the same shape as
// creation, applied to an existing row.
type UpdateFacultyRequest = CreateFacultyRequest

// ToModel converts the request into a Faculty model, parsing date fields
func (r *CreateFacultyRequest) ToModel() (*models.Faculty, error) {
	dob, err := helpers.ParseDate(r.DateOfBirth)
	if err != nil {
		return nil, err
	}

	var joinDate *time.Time
	if r.JoinDate != nil && *r.JoinDate != "" {
		jd, err := helpers.ParseDate(*r.JoinDate)
		if err != nil {
			return nil, err
		}
		joinDate = &jd
	}

	return &models.Faculty{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: dob,
		Email:       r.Email,
		Phone:       r.Phone,
		AltPhone:    r.AltPhone,
		Department:  r.Department,
		Designation: r.Designation,
		JoinDate:    joinDate,
	}, nil
}

// FacultyResponse represents a faculty row for display
type FacultyResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	DateOfBirth string  `json:"dateOfBirth"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	AltPhone    *string `json:"altPhone,omitempty"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	JoinDate    *string `json:"joinDate,omitempty"`
}

// NewFacultyResponse converts a Faculty model to its response shape
func NewFacultyResponse(f *models.Faculty) FacultyResponse {
	resp := FacultyResponse{
		ID:          f.ID,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		DateOfBirth: helpers.FormatDate(f.DateOfBirth),
		Email:       f.Email,
		Phone:       f.Phone,
		AltPhone:    f.AltPhone,
		Department:  f.Department,
		Designation: f.Designation,
	}
	if f.JoinDate != nil {
		jd := helpers.FormatDate(*f.JoinDate)
		resp.JoinDate = &jd
	}
	return resp
}

// NewFacultyListResponse converts a slice of Faculty models
func NewFacultyListResponse(faculties []*models.Faculty) []FacultyResponse {
	out := make([]FacultyResponse, 0, len(faculties))
	for _, f := range faculties {
		out = append(out, NewFacultyResponse(f))
	}
	return out
}

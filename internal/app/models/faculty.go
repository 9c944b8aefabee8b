package models

import "time"

// Faculty defines a department staff member based on the 'faculty' table
type Faculty struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	FirstName   string     `json:"firstName" db:"first_name" example:"Jane"`
	LastName    string     `json:"lastName" db:"last_name" example:"Mathew"`
	DateOfBirth time.Time  `json:"dateOfBirth" db:"date_of_birth"`
	Email       string     `json:"email" db:"email" example:"jane@college.edu"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`        // Primary phone, unique when present
	AltPhone    *string    `json:"altPhone,omitempty" db:"alt_phone"` // Secondary phone, unique when present
	Department  string     `json:"department" db:"department" example:"CS"`
	Designation string     `json:"designation" db:"designation" example:"Professor"`
	JoinDate    *time.Time `json:"joinDate,omitempty" db:"join_date"`
}

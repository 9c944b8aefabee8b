package models

// RoleType identifies the capability carried by an access token
type RoleType string

const (
	// RoleAdmin is the single administrative account configured at process start
	RoleAdmin RoleType = "ADMIN"
	// RoleFaculty is a department staff member authenticated by id + phone
	RoleFaculty RoleType = "FACULTY"
)

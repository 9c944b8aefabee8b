package models

// ActivityType defines a category of faculty activity based on the 'activity_types' table
type ActivityType struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name" example:"Workshop"`
	Category string `json:"category" db:"category" example:"Professional Development"`
}

package dto

// CreateActivityTypeRequest represents activity type creation data
type CreateActivityTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// UpdateActivityTypeRequest represents activity type update data
type UpdateActivityTypeRequest = CreateActivityTypeRequest

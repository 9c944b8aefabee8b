package dto

// AdminLoginRequest carries the administrative credential
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FacultyLoginRequest carries a faculty login: the numeric faculty id plus the
// stored primary or secondary phone number acting as the secret
type FacultyLoginRequest struct {
	FacultyID int64  `json:"facultyId" binding:"required,gt=0"`
	Phone     string `json:"phone" binding:"required"`
}

// LoginResponse returns the issued access token
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"43200"`
	Role        string `json:"role" example:"FACULTY"`
	FacultyID   int64  `json:"facultyId,omitempty" example:"5"`
}

package dto

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the caller's identity.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
	Username  string `json:"username"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
}

// RegisterRequest creates a new identity (admin only).
type RegisterRequest struct {
	Username      string `json:"username"       binding:"required,min=3,max=50"`
	Password      string `json:"password"       binding:"required,min=8,max=72"`
	FullName      string `json:"full_name"      binding:"required"`
	Email         string `json:"email"          binding:"omitempty,email"`
	Role          string `json:"role"           binding:"required,oneof=ADMIN TEACHER STUDENT"`
	InstitutionID *int64 `json:"institution_id"`
}

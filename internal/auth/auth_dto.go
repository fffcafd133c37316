package auth

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is what auth endpoints echo back. The password hash never
// leaves the service.
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

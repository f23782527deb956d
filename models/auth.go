package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Branch   string `json:"branch"`
}

type AuthResponse struct {
	Token   string  `json:"token"`
	Message string  `json:"message"`
	Profile Profile `json:"profile"`
}

// Profile is the logged-in staff member, including the branch their
// management screens are scoped to.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Branch string `json:"branch"`
}

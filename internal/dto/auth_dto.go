package dto

import "github.com/google/uuid"

type SignupRequest struct {
	Userid   string `json:"userid"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Userid   string `json:"userid"`
	Password string `json:"password"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	Userid string `json:"userid"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// UserSummary is the public shape of a user; name carries the userid.
type UserSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserListResponse struct {
	Users []UserSummary `json:"users"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

package dto

import "time"

// LoginRequest body para POST /api/auth/login (credenciales del backend ERP).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse usuario de la sesión.
type UserResponse struct {
	Username string    `json:"username"`
	Role     string    `json:"role"`
	LoggedAt time.Time `json:"logged_at"`
}

// LoginResponse token del gateway + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login correcto.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

package handler

import "github.com/techconnect/club-portal/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	// Role is optional and defaults to "user"; club roles are assigned here
	// so office bearers can manage their own board.
	Role string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse mirrors the client's persisted "user" record: the token plus
// enough identity to render role-gated views without another round trip.
type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

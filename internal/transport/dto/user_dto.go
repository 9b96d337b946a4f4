package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest registers a new user. EnterpriseID and SchoolID are
// mutually exclusive; the service rejects a request carrying both.
type CreateUserRequest struct {
	Name         string     `json:"name" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=8"`
	Role         string     `json:"role" validate:"required,oneof=admin enterprise school government student"`
	EnterpriseID *uuid.UUID `json:"enterprise_id,omitempty"`
	SchoolID     *uuid.UUID `json:"school_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// UserResponse defines the user data returned to clients.
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	EnterpriseID *uuid.UUID `json:"enterprise_id,omitempty"`
	SchoolID     *uuid.UUID `json:"school_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TokenResponse carries a fresh access/refresh token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

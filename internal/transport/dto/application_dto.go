package dto

import (
	"time"

	"talentbridge/internal/models"

	"github.com/google/uuid"
)

// ApplyToJobRequest is filed by an internal (session) user.
type ApplyToJobRequest struct {
	JobID      uuid.UUID     `json:"-" validate:"required"` // From path
	Caller     models.Caller `json:"-"`
	ResumeID   *uuid.UUID    `json:"resume_id,omitempty"`
	MatchScore *float64      `json:"match_score,omitempty" validate:"omitempty,gte=0"`
	Notes      string        `json:"notes"`
}

type GetApplicationByIDRequest struct {
	ID     uuid.UUID     `json:"-" validate:"required"` // From path
	Caller models.Caller `json:"-"`
}

// ListApplicationsByUserRequest lists the caller's own applications.
type ListApplicationsByUserRequest struct {
	Caller models.Caller `json:"-"`
	Limit  int           `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset int           `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ListApplicationsByJobRequest lists applications for a job (owner view).
type ListApplicationsByJobRequest struct {
	JobID  uuid.UUID     `json:"-" validate:"required"` // From path
	Caller models.Caller `json:"-"`
	Limit  int           `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset int           `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateApplicationRequest carries a status transition and/or a notes
// update, applied atomically. A nil Status is a notes-only update; a nil
// Notes leaves stored notes untouched (JSON null is treated like absent).
type UpdateApplicationRequest struct {
	ID     uuid.UUID     `json:"-" validate:"required"` // From path
	Caller models.Caller `json:"-"`
	Status *string       `json:"status,omitempty" validate:"omitempty,oneof=pending viewed interviewing offered rejected withdrawn"`
	Notes  *string       `json:"notes,omitempty"`
}

type WithdrawApplicationRequest struct {
	ID     uuid.UUID     `json:"-" validate:"required"` // From path
	Caller models.Caller `json:"-"`
}

// BatchTransitionRequest transitions several applications at once. Each id
// is independently authorized and validated; foreign ids are excluded from
// the count silently.
type BatchTransitionRequest struct {
	Caller models.Caller `json:"-"`
	IDs    []uuid.UUID   `json:"ids" validate:"required,min=1,dive,required"`
	Action string        `json:"action" validate:"required,oneof=view interview offer reject"`
}

// BatchTransitionResponse is the explicit partial-success result.
type BatchTransitionResponse struct {
	Requested  int         `json:"requested"`
	Updated    int         `json:"updated"`
	UpdatedIDs []uuid.UUID `json:"updated_ids"`
}

// ApplicationResponse defines the application data returned to clients.
// Exactly one of user_id / external_user_id is present.
type ApplicationResponse struct {
	ID             uuid.UUID  `json:"id"`
	JobID          uuid.UUID  `json:"job_id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	ExternalUserID string     `json:"external_user_id,omitempty"`
	ResumeID       *uuid.UUID `json:"resume_id,omitempty"`
	InterviewID    *uuid.UUID `json:"interview_id,omitempty"`
	Status         string     `json:"status"`
	MatchScore     *float64   `json:"match_score,omitempty"`
	Notes          string     `json:"notes"`
	ViewedAt       *time.Time `json:"viewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

package dto

import (
	"time"

	"talentbridge/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
// Jobs are always created as drafts; title/description may still be empty.
type CreateJobRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	SalaryRange string        `json:"salary_range"`
	Caller      models.Caller `json:"-"` // Set internally by handler from auth context
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListJobsRequest defines parameters for the public published-job listing.
type ListJobsRequest struct {
	Limit  int `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset int `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ListJobsByEnterpriseRequest defines parameters for a tenant's own listing.
type ListJobsByEnterpriseRequest struct {
	Caller  models.Caller `json:"-"`
	Limit   int           `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset  int           `form:"offset,default=0" validate:"omitempty,gte=0"`
	Status  *string       `form:"status" validate:"omitempty,oneof=draft published closed archived"`
}

// UpdateJobDetailsRequest defines the structure for updating job fields.
// Absent (nil) fields are left untouched.
type UpdateJobDetailsRequest struct {
	ID          uuid.UUID     `json:"-" validate:"required"` // From URL path
	Caller      models.Caller `json:"-"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Location    *string       `json:"location,omitempty"`
	SalaryRange *string       `json:"salary_range,omitempty"`
}

// TransitionJobRequest carries a status transition. Either Action
// (publish|close) or Status (published|closed) names the target.
type TransitionJobRequest struct {
	ID     uuid.UUID     `json:"-" validate:"required"` // From URL path
	Caller models.Caller `json:"-"`
	Action string        `json:"action" validate:"omitempty,oneof=publish close"`
	Status string        `json:"status" validate:"omitempty,oneof=published closed"`
}

// DeleteJobRequest defines the structure for deleting a draft job.
type DeleteJobRequest struct {
	ID     uuid.UUID     `json:"-" validate:"required"`
	Caller models.Caller `json:"-"`
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID           uuid.UUID  `json:"id"`
	EnterpriseID uuid.UUID  `json:"enterprise_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location,omitempty"`
	SalaryRange  string     `json:"salary_range,omitempty"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

package dto

import (
	"time"

	"talentbridge/ent/schema"

	"github.com/google/uuid"
)

// Open-surface DTOs. These requests are authenticated by the shared API
// key, so every one of them carries the external user id explicitly
// instead of a session caller.
//
// Partial-merge policy: pointer fields distinguish "absent" from "set";
// a JSON null decodes to nil and is therefore a no-op, never an erase.

// UpsertResumeRequest creates or merge-updates the resume keyed by UserID.
type UpsertResumeRequest struct {
	UserID     string                    `json:"userId" validate:"required"`
	ResumeText *string                   `json:"resumeText,omitempty"`
	Skills     *[]string                 `json:"skills,omitempty"`
	Education  *[]map[string]interface{} `json:"education,omitempty"`
	Experience *[]map[string]interface{} `json:"experience,omitempty"`
	Contact    *map[string]interface{}   `json:"contact,omitempty"`
}

// ResumeResponse defines the resume data returned to the agent.
type ResumeResponse struct {
	ID             uuid.UUID                `json:"id"`
	UserID         *uuid.UUID               `json:"user_id,omitempty"`
	ExternalUserID string                   `json:"external_user_id,omitempty"`
	ResumeText     string                   `json:"resume_text"`
	Skills         []string                 `json:"skills,omitempty"`
	Education      []map[string]interface{} `json:"education,omitempty"`
	Experience     []map[string]interface{} `json:"experience,omitempty"`
	Contact        map[string]interface{}   `json:"contact,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// CreateInterviewRequest starts a persisted interview for an external user.
type CreateInterviewRequest struct {
	UserID    string     `json:"userId" validate:"required"`
	JobID     *uuid.UUID `json:"jobId,omitempty"`
	Questions []string   `json:"questions,omitempty"`
}

// UpdateInterviewRequest is one incremental turn of a multi-turn
// interview. Answers are appended, never replaced; Status may move the
// interview to completed, which fixes completed_at once.
type UpdateInterviewRequest struct {
	ID           uuid.UUID                `json:"-" validate:"required"` // From path
	CurrentIndex *int                     `json:"currentIndex,omitempty" validate:"omitempty,gte=0"`
	Answers      []schema.InterviewAnswer `json:"answers,omitempty"`
	Status       *string                  `json:"status,omitempty" validate:"omitempty,oneof=in_progress completed"`
	Score        *float64                 `json:"score,omitempty" validate:"omitempty,gte=0"`
	Feedback     *string                  `json:"feedback,omitempty"`
}

// ListInterviewsRequest lists an external user's interviews for resumption.
type ListInterviewsRequest struct {
	UserID string `form:"userId" validate:"required"`
}

type GetInterviewByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// InterviewResponse defines the interview data returned to the agent.
type InterviewResponse struct {
	ID             uuid.UUID                `json:"id"`
	ExternalUserID string                   `json:"external_user_id,omitempty"`
	JobID          *uuid.UUID               `json:"job_id,omitempty"`
	Status         string                   `json:"status"`
	CurrentIndex   int                      `json:"current_index"`
	Questions      []string                 `json:"questions,omitempty"`
	Answers        []schema.InterviewAnswer `json:"answers,omitempty"`
	Score          *float64                 `json:"score,omitempty"`
	Feedback       string                   `json:"feedback,omitempty"`
	CompletedAt    *time.Time               `json:"completed_at,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// UpsertConversationRequest creates or updates the conversation keyed by
// the third-party ConversationID.
type UpsertConversationRequest struct {
	ConversationID string                       `json:"conversationId" validate:"required"`
	UserID         string                       `json:"userId" validate:"required"`
	Title          *string                      `json:"title,omitempty"`
	Messages       []schema.ConversationMessage `json:"messages,omitempty"`
}

type GetConversationRequest struct {
	ConversationID string `json:"-" validate:"required"` // From path
}

// ListConversationsRequest lists an external user's conversations.
type ListConversationsRequest struct {
	UserID string `form:"userId" validate:"required"`
}

// ConversationResponse defines the conversation data returned to the agent.
type ConversationResponse struct {
	ConversationID string                       `json:"conversation_id"`
	ExternalUserID string                       `json:"external_user_id,omitempty"`
	Title          string                       `json:"title,omitempty"`
	Messages       []schema.ConversationMessage `json:"messages,omitempty"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

// CreateExternalApplicationRequest files an application for an external
// user against a published job.
type CreateExternalApplicationRequest struct {
	UserID      string     `json:"userId" validate:"required"`
	JobID       uuid.UUID  `json:"jobId" validate:"required"`
	ResumeID    *uuid.UUID `json:"resumeId,omitempty"`
	InterviewID *uuid.UUID `json:"interviewId,omitempty"`
	MatchScore  *float64   `json:"matchScore,omitempty" validate:"omitempty,gte=0"`
	Notes       string     `json:"notes"`
}

// ListExternalApplicationsRequest lists applications filed by an external user.
type ListExternalApplicationsRequest struct {
	UserID string `form:"userId" validate:"required"`
}

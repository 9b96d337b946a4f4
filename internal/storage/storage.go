package storage

import (
	"context"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/application"
	"talentbridge/ent/interview"
	"talentbridge/ent/job"
	"talentbridge/ent/schema"
	"talentbridge/internal/models"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.CreateUserRequest, passwordHash string) (*ent.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error)
	GetByEmail(ctx context.Context, email string) (*ent.User, error)
}

// JobStatusUpdate is a conditional single-statement status transition.
// The write only lands when the stored status is one of FromStatus, so a
// racing transition loses with zero affected rows instead of clobbering.
type JobStatusUpdate struct {
	ID          uuid.UUID
	FromStatus  []job.Status
	ToStatus    job.Status
	PublishedAt *time.Time // first publish only; guarded by published_at IS NULL
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*ent.Job, error)
	ListByEnterprise(ctx context.Context, enterpriseID uuid.UUID, status *job.Status, limit, offset int) ([]*ent.Job, error)
	UpdateDetails(ctx context.Context, req *dto.UpdateJobDetailsRequest) (*ent.Job, error)
	UpdateStatus(ctx context.Context, upd *JobStatusUpdate) (int, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) (int, error)
}

// CreateApplicationParams creates one application row for either identity
// variant. The (identity, job) unique indexes turn a duplicate into
// ErrConflict.
type CreateApplicationParams struct {
	JobID       uuid.UUID
	Applicant   models.Applicant
	ResumeID    *uuid.UUID
	InterviewID *uuid.UUID
	MatchScore  *float64
	Notes       string
}

// ApplicationStatusUpdate is the conditional transition write for an
// application. A nil ToStatus updates notes only.
type ApplicationStatusUpdate struct {
	ID         uuid.UUID
	FromStatus []application.Status
	ToStatus   *application.Status
	Notes      *string
	ViewedAt   *time.Time // first transition into viewed only
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, params *CreateApplicationParams) (*ent.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID uuid.UUID, applicant models.Applicant) (*ent.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ent.Application, error)
	ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*ent.Application, error)
	UpdateStatus(ctx context.Context, upd *ApplicationStatusUpdate) (int, error)
}

// ResumeRepository defines the interface for resume data operations.
type ResumeRepository interface {
	GetByExternalUserID(ctx context.Context, externalUserID string) (*ent.Resume, error)
	Create(ctx context.Context, req *dto.UpsertResumeRequest) (*ent.Resume, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpsertResumeRequest) (*ent.Resume, error)
}

// InterviewUpdate is the conditional write for one interview turn. The
// write only lands while the interview is not completed; AppendAnswers
// are appended in the database, so racing turns cannot overwrite each
// other's answers.
type InterviewUpdate struct {
	ID            uuid.UUID
	CurrentIndex  *int
	AppendAnswers []schema.InterviewAnswer
	Status        *interview.Status
	Score         *float64
	Feedback      *string
	CompletedAt   *time.Time // terminal evaluation only; guarded by completed_at IS NULL
}

// InterviewRepository defines the interface for interview data operations.
type InterviewRepository interface {
	Create(ctx context.Context, req *dto.CreateInterviewRequest) (*ent.Interview, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Interview, error)
	ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Interview, error)
	Update(ctx context.Context, upd *InterviewUpdate) (int, error)
}

// ConversationRepository defines the interface for conversation data
// operations, keyed by the third-party conversation id.
type ConversationRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*ent.Conversation, error)
	ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Conversation, error)
	Create(ctx context.Context, req *dto.UpsertConversationRequest) (*ent.Conversation, error)
	UpdateByExternalID(ctx context.Context, req *dto.UpsertConversationRequest) (*ent.Conversation, error)
}

package services

import (
	"context"

	"talentbridge/ent"
	"talentbridge/internal/transport/dto"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*ent.User, string, string, error) // Returns user, access token, refresh token
	Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*ent.User, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*ent.Job, error)
	ListPublishedJobs(ctx context.Context, req *dto.ListJobsRequest) ([]*ent.Job, error)
	ListJobsByEnterprise(ctx context.Context, req *dto.ListJobsByEnterpriseRequest) ([]*ent.Job, error)
	UpdateJobDetails(ctx context.Context, req *dto.UpdateJobDetailsRequest) (*ent.Job, error)
	TransitionJob(ctx context.Context, req *dto.TransitionJobRequest) (*ent.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for application business logic,
// covering both the session surface and the external (API-key) surface.
type ApplicationService interface {
	ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*ent.Application, error)
	GetApplicationByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*ent.Application, error)
	ListApplicationsByUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]*ent.Application, error)
	ListApplicationsByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.Application, error)
	UpdateApplication(ctx context.Context, req *dto.UpdateApplicationRequest) (*ent.Application, error)
	WithdrawApplication(ctx context.Context, req *dto.WithdrawApplicationRequest) (*ent.Application, error)
	BatchTransition(ctx context.Context, req *dto.BatchTransitionRequest) (*dto.BatchTransitionResponse, error)

	CreateExternalApplication(ctx context.Context, req *dto.CreateExternalApplicationRequest) (*ent.Application, error)
	ListExternalApplications(ctx context.Context, req *dto.ListExternalApplicationsRequest) ([]*ent.Application, error)
}

// ResumeService defines the interface for resume upserts on the open surface.
type ResumeService interface {
	UpsertByExternalUser(ctx context.Context, req *dto.UpsertResumeRequest) (*ent.Resume, error)
}

// InterviewService defines the interface for incremental interview persistence.
type InterviewService interface {
	CreateInterview(ctx context.Context, req *dto.CreateInterviewRequest) (*ent.Interview, error)
	GetInterviewByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*ent.Interview, error)
	ListInterviews(ctx context.Context, req *dto.ListInterviewsRequest) ([]*ent.Interview, error)
	UpdateInterview(ctx context.Context, req *dto.UpdateInterviewRequest) (*ent.Interview, error)
}

// ConversationService defines the interface for conversation upserts keyed
// by the third-party conversation id.
type ConversationService interface {
	UpsertConversation(ctx context.Context, req *dto.UpsertConversationRequest) (*ent.Conversation, error)
	GetConversation(ctx context.Context, req *dto.GetConversationRequest) (*ent.Conversation, error)
	ListConversations(ctx context.Context, req *dto.ListConversationsRequest) ([]*ent.Conversation, error)
}

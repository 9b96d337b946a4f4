package services_test

import (
	"context"

	"talentbridge/ent"
	"talentbridge/ent/job"
	"talentbridge/internal/models"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock type for the storage.JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobRepository) ListPublished(ctx context.Context, limit, offset int) ([]*ent.Job, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Job), args.Error(1)
}

func (m *MockJobRepository) ListByEnterprise(ctx context.Context, enterpriseID uuid.UUID, status *job.Status, limit, offset int) ([]*ent.Job, error) {
	args := m.Called(ctx, enterpriseID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateDetails(ctx context.Context, req *dto.UpdateJobDetailsRequest) (*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, upd *storage.JobStatusUpdate) (int, error) {
	args := m.Called(ctx, upd)
	return args.Int(0), args.Error(1)
}

func (m *MockJobRepository) DeleteDraft(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

var _ storage.JobRepository = (*MockJobRepository)(nil)

// MockApplicationRepository is a mock type for the storage.ApplicationRepository interface
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, params *storage.CreateApplicationParams) (*ent.Application, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID uuid.UUID, applicant models.Applicant) (*ent.Application, error) {
	args := m.Called(ctx, jobID, applicant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ent.Application, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Application, error) {
	args := m.Called(ctx, externalUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*ent.Application, error) {
	args := m.Called(ctx, jobID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, upd *storage.ApplicationStatusUpdate) (int, error) {
	args := m.Called(ctx, upd)
	return args.Int(0), args.Error(1)
}

var _ storage.ApplicationRepository = (*MockApplicationRepository)(nil)

// MockResumeRepository is a mock type for the storage.ResumeRepository interface
type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) GetByExternalUserID(ctx context.Context, externalUserID string) (*ent.Resume, error) {
	args := m.Called(ctx, externalUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Resume), args.Error(1)
}

func (m *MockResumeRepository) Create(ctx context.Context, req *dto.UpsertResumeRequest) (*ent.Resume, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Resume), args.Error(1)
}

func (m *MockResumeRepository) Update(ctx context.Context, id uuid.UUID, req *dto.UpsertResumeRequest) (*ent.Resume, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Resume), args.Error(1)
}

var _ storage.ResumeRepository = (*MockResumeRepository)(nil)

// MockInterviewRepository is a mock type for the storage.InterviewRepository interface
type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) Create(ctx context.Context, req *dto.CreateInterviewRequest) (*ent.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Interview), args.Error(1)
}

func (m *MockInterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Interview), args.Error(1)
}

func (m *MockInterviewRepository) ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Interview, error) {
	args := m.Called(ctx, externalUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Update(ctx context.Context, upd *storage.InterviewUpdate) (int, error) {
	args := m.Called(ctx, upd)
	return args.Int(0), args.Error(1)
}

var _ storage.InterviewRepository = (*MockInterviewRepository)(nil)

// MockConversationRepository is a mock type for the storage.ConversationRepository interface
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) GetByExternalID(ctx context.Context, externalID string) (*ent.Conversation, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Conversation), args.Error(1)
}

func (m *MockConversationRepository) ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Conversation, error) {
	args := m.Called(ctx, externalUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Conversation), args.Error(1)
}

func (m *MockConversationRepository) Create(ctx context.Context, req *dto.UpsertConversationRequest) (*ent.Conversation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Conversation), args.Error(1)
}

func (m *MockConversationRepository) UpdateByExternalID(ctx context.Context, req *dto.UpsertConversationRequest) (*ent.Conversation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Conversation), args.Error(1)
}

var _ storage.ConversationRepository = (*MockConversationRepository)(nil)

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest, passwordHash string) (*ent.User, error) {
	args := m.Called(ctx, req, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.User), args.Error(1)
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

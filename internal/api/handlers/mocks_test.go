package handlers_test

import (
	"context"

	"talentbridge/ent"
	"talentbridge/internal/services"
	"talentbridge/internal/transport/dto"

	"github.com/stretchr/testify/mock"
)

// MockJobService is a mock type for the services.JobService interface
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobService) ListPublishedJobs(ctx context.Context, req *dto.ListJobsRequest) ([]*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Job), args.Error(1)
}

func (m *MockJobService) ListJobsByEnterprise(ctx context.Context, req *dto.ListJobsByEnterpriseRequest) ([]*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Job), args.Error(1)
}

func (m *MockJobService) UpdateJobDetails(ctx context.Context, req *dto.UpdateJobDetailsRequest) (*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobService) TransitionJob(ctx context.Context, req *dto.TransitionJobRequest) (*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ services.JobService = (*MockJobService)(nil)

// MockApplicationService is a mock type for the services.ApplicationService interface
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*ent.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Application), args.Error(1)
}

func (m *MockApplicationService) GetApplicationByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*ent.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Application), args.Error(1)
}

func (m *MockApplicationService) ListApplicationsByUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]*ent.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Application), args.Error(1)
}

func (m *MockApplicationService) ListApplicationsByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Application), args.Error(1)
}

func (m *MockApplicationService) UpdateApplication(ctx context.Context, req *dto.UpdateApplicationRequest) (*ent.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Application), args.Error(1)
}

func (m *MockApplicationService) WithdrawApplication(ctx context.Context, req *dto.WithdrawApplicationRequest) (*ent.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Application), args.Error(1)
}

func (m *MockApplicationService) BatchTransition(ctx context.Context, req *dto.BatchTransitionRequest) (*dto.BatchTransitionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchTransitionResponse), args.Error(1)
}

func (m *MockApplicationService) CreateExternalApplication(ctx context.Context, req *dto.CreateExternalApplicationRequest) (*ent.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Application), args.Error(1)
}

func (m *MockApplicationService) ListExternalApplications(ctx context.Context, req *dto.ListExternalApplicationsRequest) ([]*ent.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Application), args.Error(1)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

package services_test

import (
	"context"
	"testing"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/job"
	"talentbridge/internal/models"
	"talentbridge/internal/services"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupJobServiceTest() (context.Context, services.JobService, *MockJobRepository) {
	mockJobRepo := new(MockJobRepository)
	jobService := services.NewJobService(mockJobRepo)
	return context.Background(), jobService, mockJobRepo
}

func enterpriseCaller(enterpriseID uuid.UUID) models.Caller {
	return models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: enterpriseID}
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	req := &dto.CreateJobRequest{
		Title:  "Backend Engineer",
		Caller: enterpriseCaller(enterpriseID),
	}
	expectedJob := &ent.Job{
		ID:           uuid.New(),
		EnterpriseID: enterpriseID,
		Title:        req.Title,
		Status:       job.StatusDraft,
	}

	mockJobRepo.On("Create", ctx, req).Return(expectedJob, nil).Once()

	created, err := jobService.CreateJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedJob, created)
	assert.Equal(t, job.StatusDraft, created.Status)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_CreateJob_StudentForbidden(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	req := &dto.CreateJobRequest{
		Title:  "Backend Engineer",
		Caller: models.Caller{Role: models.RoleStudent, ID: uuid.New()},
	}

	_, err := jobService.CreateJob(ctx, req)

	assert.ErrorIs(t, err, services.ErrForbidden)
	mockJobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobService_TransitionJob_FirstPublishSetsPublishedAt(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	draft := &ent.Job{
		ID:           jobID,
		EnterpriseID: enterpriseID,
		Title:        "Backend Engineer",
		Description:  "Build services",
		Status:       job.StatusDraft,
	}
	now := time.Now()
	published := &ent.Job{
		ID:           jobID,
		EnterpriseID: enterpriseID,
		Title:        draft.Title,
		Description:  draft.Description,
		Status:       job.StatusPublished,
		PublishedAt:  &now,
	}

	mockJobRepo.On("GetByID", ctx, jobID).Return(draft, nil).Once()
	mockJobRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(upd *storage.JobStatusUpdate) bool {
		return upd.ID == jobID &&
			upd.ToStatus == job.StatusPublished &&
			len(upd.FromStatus) == 1 && upd.FromStatus[0] == job.StatusDraft &&
			upd.PublishedAt != nil
	})).Return(1, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(published, nil).Once()

	updated, err := jobService.TransitionJob(ctx, &dto.TransitionJobRequest{
		ID:     jobID,
		Caller: enterpriseCaller(enterpriseID),
		Action: "publish",
	})

	require.NoError(t, err)
	assert.Equal(t, job.StatusPublished, updated.Status)
	require.NotNil(t, updated.PublishedAt)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_TransitionJob_RepublishKeepsPublishedAt(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	firstPublish := time.Now().Add(-24 * time.Hour)
	closed := &ent.Job{
		ID:           jobID,
		EnterpriseID: enterpriseID,
		Title:        "Backend Engineer",
		Description:  "Build services",
		Status:       job.StatusClosed,
		PublishedAt:  &firstPublish,
	}
	republished := &ent.Job{
		ID:           jobID,
		EnterpriseID: enterpriseID,
		Title:        closed.Title,
		Description:  closed.Description,
		Status:       job.StatusPublished,
		PublishedAt:  &firstPublish,
	}

	mockJobRepo.On("GetByID", ctx, jobID).Return(closed, nil).Once()
	// PublishedAt must stay nil in the update so the original timestamp survives.
	mockJobRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(upd *storage.JobStatusUpdate) bool {
		return upd.ToStatus == job.StatusPublished && upd.PublishedAt == nil
	})).Return(1, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(republished, nil).Once()

	updated, err := jobService.TransitionJob(ctx, &dto.TransitionJobRequest{
		ID:     jobID,
		Caller: enterpriseCaller(enterpriseID),
		Status: "published",
	})

	require.NoError(t, err)
	assert.Equal(t, &firstPublish, updated.PublishedAt)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_TransitionJob_PublishRequiresContent(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	draft := &ent.Job{
		ID:           jobID,
		EnterpriseID: enterpriseID,
		Title:        "   ",
		Description:  "",
		Status:       job.StatusDraft,
	}

	mockJobRepo.On("GetByID", ctx, jobID).Return(draft, nil).Once()

	_, err := jobService.TransitionJob(ctx, &dto.TransitionJobRequest{
		ID:     jobID,
		Caller: enterpriseCaller(enterpriseID),
		Action: "publish",
	})

	assert.ErrorIs(t, err, services.ErrValidation)
	mockJobRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestJobService_TransitionJob_IllegalTransition(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	draft := &ent.Job{ID: jobID, EnterpriseID: enterpriseID, Status: job.StatusDraft}

	mockJobRepo.On("GetByID", ctx, jobID).Return(draft, nil).Once()

	_, err := jobService.TransitionJob(ctx, &dto.TransitionJobRequest{
		ID:     jobID,
		Caller: enterpriseCaller(enterpriseID),
		Action: "close",
	})

	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	mockJobRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestJobService_TransitionJob_ConcurrentChangeConflicts(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	published := &ent.Job{
		ID:           jobID,
		EnterpriseID: enterpriseID,
		Title:        "Backend Engineer",
		Description:  "Build services",
		Status:       job.StatusPublished,
	}

	mockJobRepo.On("GetByID", ctx, jobID).Return(published, nil).Once()
	// Zero affected rows: someone else moved the status between read and write.
	mockJobRepo.On("UpdateStatus", ctx, mock.Anything).Return(0, nil).Once()

	_, err := jobService.TransitionJob(ctx, &dto.TransitionJobRequest{
		ID:     jobID,
		Caller: enterpriseCaller(enterpriseID),
		Action: "close",
	})

	assert.ErrorIs(t, err, services.ErrConflict)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_TransitionJob_CrossTenantForbidden(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	jobID := uuid.New()
	found := &ent.Job{
		ID:           jobID,
		EnterpriseID: uuid.New(),
		Title:        "Backend Engineer",
		Description:  "Build services",
		Status:       job.StatusDraft,
	}

	mockJobRepo.On("GetByID", ctx, jobID).Return(found, nil).Once()

	_, err := jobService.TransitionJob(ctx, &dto.TransitionJobRequest{
		ID:     jobID,
		Caller: enterpriseCaller(uuid.New()), // different tenant
		Action: "publish",
	})

	assert.ErrorIs(t, err, services.ErrForbidden)
	mockJobRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestJobService_TransitionJob_MissingTarget(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	_, err := jobService.TransitionJob(ctx, &dto.TransitionJobRequest{
		ID:     uuid.New(),
		Caller: enterpriseCaller(uuid.New()),
	})

	assert.ErrorIs(t, err, services.ErrValidation)
	mockJobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestJobService_DeleteJob_DraftOnly(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	published := &ent.Job{ID: jobID, EnterpriseID: enterpriseID, Status: job.StatusPublished}

	mockJobRepo.On("GetByID", ctx, jobID).Return(published, nil).Once()

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: jobID, Caller: enterpriseCaller(enterpriseID)})

	assert.ErrorIs(t, err, services.ErrConflict)
	mockJobRepo.AssertNotCalled(t, "DeleteDraft", mock.Anything, mock.Anything)
}

func TestJobService_DeleteJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	draft := &ent.Job{ID: jobID, EnterpriseID: enterpriseID, Status: job.StatusDraft}

	mockJobRepo.On("GetByID", ctx, jobID).Return(draft, nil).Once()
	mockJobRepo.On("DeleteDraft", ctx, jobID).Return(1, nil).Once()

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: jobID, Caller: enterpriseCaller(enterpriseID)})

	require.NoError(t, err)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_DeleteJob_LostRaceConflicts(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	draft := &ent.Job{ID: jobID, EnterpriseID: enterpriseID, Status: job.StatusDraft}

	mockJobRepo.On("GetByID", ctx, jobID).Return(draft, nil).Once()
	// The job was published between the read and the conditional delete.
	mockJobRepo.On("DeleteDraft", ctx, jobID).Return(0, nil).Once()

	err := jobService.DeleteJob(ctx, &dto.DeleteJobRequest{ID: jobID, Caller: enterpriseCaller(enterpriseID)})

	assert.ErrorIs(t, err, services.ErrConflict)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_GetJobByID_NotFound(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	jobID := uuid.New()
	mockJobRepo.On("GetByID", ctx, jobID).Return(nil, storage.ErrNotFound).Once()

	_, err := jobService.GetJobByID(ctx, &dto.GetJobByIDRequest{ID: jobID})

	assert.ErrorIs(t, err, services.ErrNotFound)
}

package services_test

import (
	"context"
	"testing"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/application"
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

func setupApplicationServiceTest() (context.Context, services.ApplicationService, *MockApplicationRepository, *MockJobRepository) {
	mockAppRepo := new(MockApplicationRepository)
	mockJobRepo := new(MockJobRepository)
	appService := services.NewApplicationService(mockAppRepo, mockJobRepo)
	return context.Background(), appService, mockAppRepo, mockJobRepo
}

func ptrString(s string) *string { return &s }

func TestApplicationService_ApplyToJob_Success(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	enterpriseID := uuid.New()
	jobID := uuid.New()
	studentID := uuid.New()
	publishedJob := &ent.Job{ID: jobID, EnterpriseID: enterpriseID, Status: job.StatusPublished}
	applicant := models.InternalApplicant(studentID)
	created := &ent.Application{ID: uuid.New(), JobID: jobID, UserID: studentID, Status: application.StatusPending}

	mockJobRepo.On("GetByID", ctx, jobID).Return(publishedJob, nil).Once()
	mockAppRepo.On("FindByJobAndApplicant", ctx, jobID, applicant).Return(nil, storage.ErrNotFound).Once()
	mockAppRepo.On("Create", ctx, mock.MatchedBy(func(params *storage.CreateApplicationParams) bool {
		return params.JobID == jobID && params.Applicant == applicant
	})).Return(created, nil).Once()

	app, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{
		JobID:  jobID,
		Caller: models.Caller{Role: models.RoleStudent, ID: studentID},
	})

	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, app.Status)
	mockAppRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
}

func TestApplicationService_ApplyToJob_DraftJobLooksMissing(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	jobID := uuid.New()
	draftJob := &ent.Job{ID: jobID, EnterpriseID: uuid.New(), Status: job.StatusDraft}

	mockJobRepo.On("GetByID", ctx, jobID).Return(draftJob, nil).Once()

	_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{
		JobID:  jobID,
		Caller: models.Caller{Role: models.RoleStudent, ID: uuid.New()},
	})

	assert.ErrorIs(t, err, services.ErrNotFound)
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_ApplyToJob_TenantRolesForbidden(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	for _, role := range []models.Role{models.RoleEnterprise, models.RoleSchool, models.RoleGovernment} {
		_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{
			JobID:  uuid.New(),
			Caller: models.Caller{Role: role, ID: uuid.New(), EnterpriseID: uuid.New()},
		})

		assert.ErrorIs(t, err, services.ErrForbidden, "role %s", role)
	}
	mockJobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_ApplyToJob_DuplicateConflicts(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	jobID := uuid.New()
	studentID := uuid.New()
	publishedJob := &ent.Job{ID: jobID, EnterpriseID: uuid.New(), Status: job.StatusPublished}
	applicant := models.InternalApplicant(studentID)
	existing := &ent.Application{ID: uuid.New(), JobID: jobID, UserID: studentID}

	mockJobRepo.On("GetByID", ctx, jobID).Return(publishedJob, nil).Once()
	mockAppRepo.On("FindByJobAndApplicant", ctx, jobID, applicant).Return(existing, nil).Once()

	_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{
		JobID:  jobID,
		Caller: models.Caller{Role: models.RoleStudent, ID: studentID},
	})

	assert.ErrorIs(t, err, services.ErrConflict)
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_CreateExternalApplication_RaceLoserConflicts(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	jobID := uuid.New()
	publishedJob := &ent.Job{ID: jobID, EnterpriseID: uuid.New(), Status: job.StatusPublished}
	applicant := models.ExternalApplicant("ext-user-1")

	mockJobRepo.On("GetByID", ctx, jobID).Return(publishedJob, nil).Once()
	mockAppRepo.On("FindByJobAndApplicant", ctx, jobID, applicant).Return(nil, storage.ErrNotFound).Once()
	// The unique index settles the race: the concurrent insert won.
	mockAppRepo.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict).Once()

	_, err := appService.CreateExternalApplication(ctx, &dto.CreateExternalApplicationRequest{
		UserID: "ext-user-1",
		JobID:  jobID,
	})

	assert.ErrorIs(t, err, services.ErrConflict)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_CreateExternalApplication_DraftJobLooksMissing(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	jobID := uuid.New()
	draftJob := &ent.Job{ID: jobID, EnterpriseID: uuid.New(), Status: job.StatusDraft}

	mockJobRepo.On("GetByID", ctx, jobID).Return(draftJob, nil).Once()

	_, err := appService.CreateExternalApplication(ctx, &dto.CreateExternalApplicationRequest{
		UserID: "ext-user-1",
		JobID:  jobID,
	})

	assert.ErrorIs(t, err, services.ErrNotFound)
	mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_UpdateApplication_FirstViewSetsViewedAt(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	enterpriseID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	pending := &ent.Application{ID: appID, JobID: jobID, UserID: uuid.New(), Status: application.StatusPending}
	owningJob := &ent.Job{ID: jobID, EnterpriseID: enterpriseID, Status: job.StatusPublished}
	now := time.Now()
	viewed := &ent.Application{ID: appID, JobID: jobID, Status: application.StatusViewed, ViewedAt: &now}

	mockAppRepo.On("GetByID", ctx, appID).Return(pending, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(owningJob, nil).Once()
	mockAppRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(upd *storage.ApplicationStatusUpdate) bool {
		return upd.ID == appID &&
			upd.ToStatus != nil && *upd.ToStatus == application.StatusViewed &&
			upd.ViewedAt != nil
	})).Return(1, nil).Once()
	mockAppRepo.On("GetByID", ctx, appID).Return(viewed, nil).Once()

	updated, err := appService.UpdateApplication(ctx, &dto.UpdateApplicationRequest{
		ID:     appID,
		Caller: enterpriseCaller(enterpriseID),
		Status: ptrString("viewed"),
	})

	require.NoError(t, err)
	assert.NotNil(t, updated.ViewedAt)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateApplication_ViewedAtSetOnlyOnce(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	enterpriseID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	viewedAt := time.Now().Add(-time.Hour)
	// Already carries viewed_at from an earlier pass through viewed.
	pendingAgain := &ent.Application{ID: appID, JobID: jobID, Status: application.StatusPending, ViewedAt: &viewedAt}
	owningJob := &ent.Job{ID: jobID, EnterpriseID: enterpriseID}

	mockAppRepo.On("GetByID", ctx, appID).Return(pendingAgain, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(owningJob, nil).Once()
	mockAppRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(upd *storage.ApplicationStatusUpdate) bool {
		return upd.ViewedAt == nil
	})).Return(1, nil).Once()
	mockAppRepo.On("GetByID", ctx, appID).Return(pendingAgain, nil).Once()

	_, err := appService.UpdateApplication(ctx, &dto.UpdateApplicationRequest{
		ID:     appID,
		Caller: enterpriseCaller(enterpriseID),
		Status: ptrString("viewed"),
	})

	require.NoError(t, err)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateApplication_TerminalStateRejectsExit(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	enterpriseID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	offered := &ent.Application{ID: appID, JobID: jobID, Status: application.StatusOffered}
	owningJob := &ent.Job{ID: jobID, EnterpriseID: enterpriseID}

	mockAppRepo.On("GetByID", ctx, appID).Return(offered, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(owningJob, nil).Once()

	_, err := appService.UpdateApplication(ctx, &dto.UpdateApplicationRequest{
		ID:     appID,
		Caller: enterpriseCaller(enterpriseID),
		Status: ptrString("rejected"),
	})

	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	mockAppRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestApplicationService_UpdateApplication_NothingToUpdate(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	enterpriseID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	pending := &ent.Application{ID: appID, JobID: jobID, Status: application.StatusPending}
	owningJob := &ent.Job{ID: jobID, EnterpriseID: enterpriseID}

	mockAppRepo.On("GetByID", ctx, appID).Return(pending, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(owningJob, nil).Once()

	_, err := appService.UpdateApplication(ctx, &dto.UpdateApplicationRequest{
		ID:     appID,
		Caller: enterpriseCaller(enterpriseID),
	})

	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestApplicationService_UpdateApplication_NotesOnly(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	enterpriseID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	pending := &ent.Application{ID: appID, JobID: jobID, Status: application.StatusPending}
	owningJob := &ent.Job{ID: jobID, EnterpriseID: enterpriseID}

	mockAppRepo.On("GetByID", ctx, appID).Return(pending, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(owningJob, nil).Once()
	mockAppRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(upd *storage.ApplicationStatusUpdate) bool {
		return upd.ToStatus == nil && upd.Notes != nil && *upd.Notes == "strong candidate"
	})).Return(1, nil).Once()
	mockAppRepo.On("GetByID", ctx, appID).Return(pending, nil).Once()

	_, err := appService.UpdateApplication(ctx, &dto.UpdateApplicationRequest{
		ID:     appID,
		Caller: enterpriseCaller(enterpriseID),
		Notes:  ptrString("strong candidate"),
	})

	require.NoError(t, err)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_WithdrawApplication_ApplicantOnly(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	enterpriseID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	studentID := uuid.New()
	pending := &ent.Application{ID: appID, JobID: jobID, UserID: studentID, Status: application.StatusPending}
	owningJob := &ent.Job{ID: jobID, EnterpriseID: enterpriseID}
	withdrawn := &ent.Application{ID: appID, JobID: jobID, UserID: studentID, Status: application.StatusWithdrawn}

	// The owning enterprise cannot withdraw on the applicant's behalf.
	mockAppRepo.On("GetByID", ctx, appID).Return(pending, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(owningJob, nil).Once()

	_, err := appService.WithdrawApplication(ctx, &dto.WithdrawApplicationRequest{
		ID:     appID,
		Caller: enterpriseCaller(enterpriseID),
	})
	assert.ErrorIs(t, err, services.ErrForbidden)

	// The applicant can.
	mockAppRepo.On("GetByID", ctx, appID).Return(pending, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(owningJob, nil).Once()
	mockAppRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(upd *storage.ApplicationStatusUpdate) bool {
		return upd.ToStatus != nil && *upd.ToStatus == application.StatusWithdrawn
	})).Return(1, nil).Once()
	mockAppRepo.On("GetByID", ctx, appID).Return(withdrawn, nil).Once()

	updated, err := appService.WithdrawApplication(ctx, &dto.WithdrawApplicationRequest{
		ID:     appID,
		Caller: models.Caller{Role: models.RoleStudent, ID: studentID},
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusWithdrawn, updated.Status)
	mockAppRepo.AssertExpectations(t)
}

func TestApplicationService_BatchTransition_SkipsForeignAndTerminal(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	enterpriseID := uuid.New()
	caller := enterpriseCaller(enterpriseID)

	ownJobID := uuid.New()
	foreignJobID := uuid.New()
	ownJob := &ent.Job{ID: ownJobID, EnterpriseID: enterpriseID}
	foreignJob := &ent.Job{ID: foreignJobID, EnterpriseID: uuid.New()}

	okID := uuid.New()
	foreignID := uuid.New()
	terminalID := uuid.New()
	missingID := uuid.New()

	okApp := &ent.Application{ID: okID, JobID: ownJobID, Status: application.StatusPending}
	foreignApp := &ent.Application{ID: foreignID, JobID: foreignJobID, Status: application.StatusPending}
	terminalApp := &ent.Application{ID: terminalID, JobID: ownJobID, Status: application.StatusWithdrawn}

	mockAppRepo.On("GetByID", ctx, okID).Return(okApp, nil).Once()
	mockJobRepo.On("GetByID", ctx, ownJobID).Return(ownJob, nil).Twice()
	mockAppRepo.On("GetByID", ctx, foreignID).Return(foreignApp, nil).Once()
	mockJobRepo.On("GetByID", ctx, foreignJobID).Return(foreignJob, nil).Once()
	mockAppRepo.On("GetByID", ctx, terminalID).Return(terminalApp, nil).Once()
	mockAppRepo.On("GetByID", ctx, missingID).Return(nil, storage.ErrNotFound).Once()

	mockAppRepo.On("UpdateStatus", ctx, mock.MatchedBy(func(upd *storage.ApplicationStatusUpdate) bool {
		return upd.ID == okID && upd.ToStatus != nil && *upd.ToStatus == application.StatusViewed
	})).Return(1, nil).Once()

	resp, err := appService.BatchTransition(ctx, &dto.BatchTransitionRequest{
		Caller: caller,
		IDs:    []uuid.UUID{okID, foreignID, terminalID, missingID},
		Action: "view",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Requested)
	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, []uuid.UUID{okID}, resp.UpdatedIDs)
	mockAppRepo.AssertExpectations(t)
	mockJobRepo.AssertExpectations(t)
}

func TestApplicationService_BatchTransition_UnknownAction(t *testing.T) {
	ctx, appService, _, _ := setupApplicationServiceTest()

	_, err := appService.BatchTransition(ctx, &dto.BatchTransitionRequest{
		Caller: enterpriseCaller(uuid.New()),
		IDs:    []uuid.UUID{uuid.New()},
		Action: "promote",
	})

	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestApplicationService_BatchTransition_EmptyResultHasEmptySlice(t *testing.T) {
	ctx, appService, mockAppRepo, _ := setupApplicationServiceTest()

	missingID := uuid.New()
	mockAppRepo.On("GetByID", ctx, missingID).Return(nil, storage.ErrNotFound).Once()

	resp, err := appService.BatchTransition(ctx, &dto.BatchTransitionRequest{
		Caller: enterpriseCaller(uuid.New()),
		IDs:    []uuid.UUID{missingID},
		Action: "reject",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Requested)
	assert.Equal(t, 0, resp.Updated)
	assert.NotNil(t, resp.UpdatedIDs)
	assert.Empty(t, resp.UpdatedIDs)
}

func TestApplicationService_GetApplicationByID_ForeignLooksMissing(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo := setupApplicationServiceTest()

	appID := uuid.New()
	jobID := uuid.New()
	app := &ent.Application{ID: appID, JobID: jobID, UserID: uuid.New(), Status: application.StatusPending}
	owningJob := &ent.Job{ID: jobID, EnterpriseID: uuid.New()}

	mockAppRepo.On("GetByID", ctx, appID).Return(app, nil).Once()
	mockJobRepo.On("GetByID", ctx, jobID).Return(owningJob, nil).Once()

	// A student who is not the applicant gets the same error shape as a
	// missing row.
	_, err := appService.GetApplicationByID(ctx, &dto.GetApplicationByIDRequest{
		ID:     appID,
		Caller: models.Caller{Role: models.RoleStudent, ID: uuid.New()},
	})

	assert.ErrorIs(t, err, services.ErrForbidden)
}

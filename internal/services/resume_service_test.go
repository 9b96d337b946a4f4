package services_test

import (
	"context"
	"testing"

	"talentbridge/ent"
	"talentbridge/internal/services"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupResumeServiceTest() (context.Context, services.ResumeService, *MockResumeRepository) {
	mockResumeRepo := new(MockResumeRepository)
	resumeService := services.NewResumeService(mockResumeRepo)
	return context.Background(), resumeService, mockResumeRepo
}

func TestResumeService_Upsert_MissingUserID(t *testing.T) {
	ctx, resumeService, mockResumeRepo := setupResumeServiceTest()

	_, err := resumeService.UpsertByExternalUser(ctx, &dto.UpsertResumeRequest{})

	assert.ErrorIs(t, err, services.ErrValidation)
	mockResumeRepo.AssertNotCalled(t, "GetByExternalUserID", mock.Anything, mock.Anything)
}

func TestResumeService_Upsert_CreatesWhenMissing(t *testing.T) {
	ctx, resumeService, mockResumeRepo := setupResumeServiceTest()

	req := &dto.UpsertResumeRequest{UserID: "ext-user-1", ResumeText: ptrString("Ten years of Go")}
	created := &ent.Resume{ID: uuid.New(), ExternalUserID: "ext-user-1", ResumeText: "Ten years of Go"}

	mockResumeRepo.On("GetByExternalUserID", ctx, "ext-user-1").Return(nil, storage.ErrNotFound).Once()
	mockResumeRepo.On("Create", ctx, req).Return(created, nil).Once()

	resume, err := resumeService.UpsertByExternalUser(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, resume)
	mockResumeRepo.AssertExpectations(t)
}

func TestResumeService_Upsert_MergesIntoExisting(t *testing.T) {
	ctx, resumeService, mockResumeRepo := setupResumeServiceTest()

	existingID := uuid.New()
	existing := &ent.Resume{
		ID:             existingID,
		ExternalUserID: "ext-user-1",
		ResumeText:     "Ten years of Go",
		Skills:         []string{"go", "sql"},
	}
	// Absent fields stay nil pointers and must not erase stored values;
	// the repo receives them as-is and skips nil fields.
	req := &dto.UpsertResumeRequest{
		UserID: "ext-user-1",
		Skills: &[]string{"go", "sql", "redis"},
	}
	merged := &ent.Resume{
		ID:             existingID,
		ExternalUserID: "ext-user-1",
		ResumeText:     "Ten years of Go",
		Skills:         []string{"go", "sql", "redis"},
	}

	mockResumeRepo.On("GetByExternalUserID", ctx, "ext-user-1").Return(existing, nil).Once()
	mockResumeRepo.On("Update", ctx, existingID, req).Return(merged, nil).Once()

	resume, err := resumeService.UpsertByExternalUser(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "Ten years of Go", resume.ResumeText)
	assert.Equal(t, []string{"go", "sql", "redis"}, resume.Skills)
	mockResumeRepo.AssertExpectations(t)
}

func TestResumeService_Upsert_CreateRaceFallsBackToUpdate(t *testing.T) {
	ctx, resumeService, mockResumeRepo := setupResumeServiceTest()

	req := &dto.UpsertResumeRequest{UserID: "ext-user-1", ResumeText: ptrString("updated")}
	winnerID := uuid.New()
	winnersRow := &ent.Resume{ID: winnerID, ExternalUserID: "ext-user-1"}
	updated := &ent.Resume{ID: winnerID, ExternalUserID: "ext-user-1", ResumeText: "updated"}

	mockResumeRepo.On("GetByExternalUserID", ctx, "ext-user-1").Return(nil, storage.ErrNotFound).Once()
	mockResumeRepo.On("Create", ctx, req).Return(nil, storage.ErrConflict).Once()
	mockResumeRepo.On("GetByExternalUserID", ctx, "ext-user-1").Return(winnersRow, nil).Once()
	mockResumeRepo.On("Update", ctx, winnerID, req).Return(updated, nil).Once()

	resume, err := resumeService.UpsertByExternalUser(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updated, resume)
	mockResumeRepo.AssertExpectations(t)
}

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

func setupConversationServiceTest() (context.Context, services.ConversationService, *MockConversationRepository) {
	mockConversationRepo := new(MockConversationRepository)
	conversationService := services.NewConversationService(mockConversationRepo)
	return context.Background(), conversationService, mockConversationRepo
}

func TestConversationService_Upsert_MissingIDs(t *testing.T) {
	ctx, conversationService, mockConversationRepo := setupConversationServiceTest()

	_, err := conversationService.UpsertConversation(ctx, &dto.UpsertConversationRequest{UserID: "ext-user-1"})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = conversationService.UpsertConversation(ctx, &dto.UpsertConversationRequest{ConversationID: "conv-1"})
	assert.ErrorIs(t, err, services.ErrValidation)

	mockConversationRepo.AssertNotCalled(t, "GetByExternalID", mock.Anything, mock.Anything)
}

func TestConversationService_Upsert_CreatesWhenMissing(t *testing.T) {
	ctx, conversationService, mockConversationRepo := setupConversationServiceTest()

	req := &dto.UpsertConversationRequest{ConversationID: "conv-1", UserID: "ext-user-1"}
	created := &ent.Conversation{ID: uuid.New(), ExternalID: "conv-1", ExternalUserID: "ext-user-1"}

	mockConversationRepo.On("GetByExternalID", ctx, "conv-1").Return(nil, storage.ErrNotFound).Once()
	mockConversationRepo.On("Create", ctx, req).Return(created, nil).Once()

	conv, err := conversationService.UpsertConversation(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, conv)
	mockConversationRepo.AssertExpectations(t)
}

func TestConversationService_Upsert_UpdatesExisting(t *testing.T) {
	ctx, conversationService, mockConversationRepo := setupConversationServiceTest()

	req := &dto.UpsertConversationRequest{ConversationID: "conv-1", UserID: "ext-user-1", Title: ptrString("Job hunt")}
	existing := &ent.Conversation{ID: uuid.New(), ExternalID: "conv-1", ExternalUserID: "ext-user-1"}
	updated := &ent.Conversation{ID: existing.ID, ExternalID: "conv-1", ExternalUserID: "ext-user-1", Title: "Job hunt"}

	mockConversationRepo.On("GetByExternalID", ctx, "conv-1").Return(existing, nil).Once()
	mockConversationRepo.On("UpdateByExternalID", ctx, req).Return(updated, nil).Once()

	conv, err := conversationService.UpsertConversation(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "Job hunt", conv.Title)
	mockConversationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConversationService_Upsert_CreateRaceFallsBackToUpdate(t *testing.T) {
	ctx, conversationService, mockConversationRepo := setupConversationServiceTest()

	req := &dto.UpsertConversationRequest{ConversationID: "conv-1", UserID: "ext-user-1"}
	winnersRow := &ent.Conversation{ID: uuid.New(), ExternalID: "conv-1"}

	mockConversationRepo.On("GetByExternalID", ctx, "conv-1").Return(nil, storage.ErrNotFound).Once()
	mockConversationRepo.On("Create", ctx, req).Return(nil, storage.ErrConflict).Once()
	mockConversationRepo.On("UpdateByExternalID", ctx, req).Return(winnersRow, nil).Once()

	conv, err := conversationService.UpsertConversation(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, winnersRow, conv)
	mockConversationRepo.AssertExpectations(t)
}

func TestConversationService_GetConversation_NotFound(t *testing.T) {
	ctx, conversationService, mockConversationRepo := setupConversationServiceTest()

	mockConversationRepo.On("GetByExternalID", ctx, "conv-unknown").Return(nil, storage.ErrNotFound).Once()

	_, err := conversationService.GetConversation(ctx, &dto.GetConversationRequest{ConversationID: "conv-unknown"})

	assert.ErrorIs(t, err, services.ErrNotFound)
}

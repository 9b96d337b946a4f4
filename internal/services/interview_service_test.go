package services_test

import (
	"context"
	"testing"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/interview"
	"talentbridge/ent/schema"
	"talentbridge/internal/services"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupInterviewServiceTest() (context.Context, services.InterviewService, *MockInterviewRepository) {
	mockInterviewRepo := new(MockInterviewRepository)
	interviewService := services.NewInterviewService(mockInterviewRepo)
	return context.Background(), interviewService, mockInterviewRepo
}

func ptrInt(i int) *int             { return &i }
func ptrFloat64(f float64) *float64 { return &f }

func TestInterviewService_CreateInterview_MissingUserID(t *testing.T) {
	ctx, interviewService, mockInterviewRepo := setupInterviewServiceTest()

	_, err := interviewService.CreateInterview(ctx, &dto.CreateInterviewRequest{})

	assert.ErrorIs(t, err, services.ErrValidation)
	mockInterviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInterviewService_UpdateInterview_AppendsAnswers(t *testing.T) {
	ctx, interviewService, mockInterviewRepo := setupInterviewServiceTest()

	interviewID := uuid.New()
	existing := &ent.Interview{
		ID:             interviewID,
		ExternalUserID: "ext-user-1",
		Status:         interview.StatusInProgress,
		CurrentIndex:   1,
		Answers: []schema.InterviewAnswer{
			{Question: "Tell me about yourself", Answer: "I build backends"},
		},
	}
	req := &dto.UpdateInterviewRequest{
		ID:           interviewID,
		CurrentIndex: ptrInt(2),
		Answers: []schema.InterviewAnswer{
			{Question: "Why this role", Answer: "I like the domain"},
		},
	}

	appended := &ent.Interview{
		ID:             interviewID,
		ExternalUserID: "ext-user-1",
		Status:         interview.StatusInProgress,
		CurrentIndex:   2,
		Answers: []schema.InterviewAnswer{
			{Question: "Tell me about yourself", Answer: "I build backends"},
			{Question: "Why this role", Answer: "I like the domain"},
		},
	}

	mockInterviewRepo.On("GetByID", ctx, interviewID).Return(existing, nil).Once()
	// Only the new answers go to the repo; the database owns the append.
	mockInterviewRepo.On("Update", ctx, mock.MatchedBy(func(upd *storage.InterviewUpdate) bool {
		return upd.ID == interviewID &&
			len(upd.AppendAnswers) == 1 &&
			upd.AppendAnswers[0].Question == "Why this role" &&
			upd.CurrentIndex != nil && *upd.CurrentIndex == 2 &&
			upd.Status == nil && upd.CompletedAt == nil
	})).Return(1, nil).Once()
	mockInterviewRepo.On("GetByID", ctx, interviewID).Return(appended, nil).Once()

	updated, err := interviewService.UpdateInterview(ctx, req)

	require.NoError(t, err)
	require.Len(t, updated.Answers, 2)
	assert.Equal(t, "Why this role", updated.Answers[1].Question)
	mockInterviewRepo.AssertExpectations(t)
}

func TestInterviewService_UpdateInterview_CompletionSetsCompletedAtOnce(t *testing.T) {
	ctx, interviewService, mockInterviewRepo := setupInterviewServiceTest()

	interviewID := uuid.New()
	inProgress := &ent.Interview{
		ID:     interviewID,
		Status: interview.StatusInProgress,
	}
	status := string(interview.StatusCompleted)
	req := &dto.UpdateInterviewRequest{
		ID:       interviewID,
		Status:   &status,
		Score:    ptrFloat64(8.5),
		Feedback: ptrString("Solid answers"),
	}
	now := time.Now()
	completed := &ent.Interview{
		ID:          interviewID,
		Status:      interview.StatusCompleted,
		Score:       ptrFloat64(8.5),
		Feedback:    "Solid answers",
		CompletedAt: &now,
	}

	mockInterviewRepo.On("GetByID", ctx, interviewID).Return(inProgress, nil).Once()
	mockInterviewRepo.On("Update", ctx, mock.MatchedBy(func(upd *storage.InterviewUpdate) bool {
		return upd.Status != nil && *upd.Status == interview.StatusCompleted &&
			upd.CompletedAt != nil
	})).Return(1, nil).Once()
	mockInterviewRepo.On("GetByID", ctx, interviewID).Return(completed, nil).Once()

	updated, err := interviewService.UpdateInterview(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, interview.StatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	mockInterviewRepo.AssertExpectations(t)
}

func TestInterviewService_UpdateInterview_CompletedRejectsUpdates(t *testing.T) {
	ctx, interviewService, mockInterviewRepo := setupInterviewServiceTest()

	interviewID := uuid.New()
	done := time.Now().Add(-time.Hour)
	completed := &ent.Interview{
		ID:          interviewID,
		Status:      interview.StatusCompleted,
		CompletedAt: &done,
	}

	mockInterviewRepo.On("GetByID", ctx, interviewID).Return(completed, nil).Once()

	_, err := interviewService.UpdateInterview(ctx, &dto.UpdateInterviewRequest{
		ID:           interviewID,
		CurrentIndex: ptrInt(5),
	})

	assert.ErrorIs(t, err, services.ErrConflict)
	mockInterviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInterviewService_UpdateInterview_ConcurrentCompletionConflicts(t *testing.T) {
	ctx, interviewService, mockInterviewRepo := setupInterviewServiceTest()

	interviewID := uuid.New()
	inProgress := &ent.Interview{
		ID:     interviewID,
		Status: interview.StatusInProgress,
	}

	// A racing turn completed the interview between the read and the
	// conditional write, so the write matches zero rows.
	mockInterviewRepo.On("GetByID", ctx, interviewID).Return(inProgress, nil).Once()
	mockInterviewRepo.On("Update", ctx, mock.Anything).Return(0, nil).Once()

	_, err := interviewService.UpdateInterview(ctx, &dto.UpdateInterviewRequest{
		ID: interviewID,
		Answers: []schema.InterviewAnswer{
			{Question: "Anything else", Answer: "No"},
		},
	})

	assert.ErrorIs(t, err, services.ErrConflict)
	mockInterviewRepo.AssertExpectations(t)
}

func TestInterviewService_ListInterviews_MissingUserID(t *testing.T) {
	ctx, interviewService, _ := setupInterviewServiceTest()

	_, err := interviewService.ListInterviews(ctx, &dto.ListInterviewsRequest{})

	assert.ErrorIs(t, err, services.ErrValidation)
}

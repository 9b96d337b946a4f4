package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/interview"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"
)

type interviewService struct {
	interviewRepo storage.InterviewRepository
}

// NewInterviewService creates a new instance of InterviewService.
func NewInterviewService(interviewRepo storage.InterviewRepository) InterviewService {
	return &interviewService{interviewRepo: interviewRepo}
}

// CreateInterview starts a persisted interview for an external user.
func (s *interviewService) CreateInterview(ctx context.Context, req *dto.CreateInterviewRequest) (*ent.Interview, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	created, err := s.interviewRepo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating interview")
	}
	return created, nil
}

func (s *interviewService) GetInterviewByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*ent.Interview, error) {
	found, err := s.interviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching interview %s", req.ID))
	}
	return found, nil
}

func (s *interviewService) ListInterviews(ctx context.Context, req *dto.ListInterviewsRequest) ([]*ent.Interview, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	interviews, err := s.interviewRepo.ListByExternalUser(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "listing interviews")
	}
	return interviews, nil
}

// UpdateInterview applies one incremental turn: advance the cursor,
// append answers, or close out with the terminal evaluation. A completed
// interview accepts no further updates, and completed_at is set exactly
// once. The write is a single conditional UPDATE with an in-database
// answer append, so concurrent turns cannot lose each other's answers.
func (s *interviewService) UpdateInterview(ctx context.Context, req *dto.UpdateInterviewRequest) (*ent.Interview, error) {
	existing, err := s.interviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching interview %s", req.ID))
	}

	if existing.Status == interview.StatusCompleted {
		log.Printf("UpdateInterview: Attempt to update completed interview %s", req.ID)
		return nil, fmt.Errorf("%w: interview is already completed", ErrConflict)
	}

	upd := &storage.InterviewUpdate{
		ID:            req.ID,
		CurrentIndex:  req.CurrentIndex,
		AppendAnswers: req.Answers,
		Score:         req.Score,
		Feedback:      req.Feedback,
	}

	if req.Status != nil && *req.Status == string(interview.StatusCompleted) {
		st := interview.StatusCompleted
		upd.Status = &st
		now := time.Now()
		upd.CompletedAt = &now
	}

	affected, err := s.interviewRepo.Update(ctx, upd)
	if err != nil {
		return nil, mapRepoError(err, "updating interview")
	}
	if affected == 0 {
		// Lost a race: the interview completed between read and write.
		return nil, fmt.Errorf("%w: interview changed concurrently", ErrConflict)
	}

	updated, err := s.interviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "re-fetching interview after update")
	}
	return updated, nil
}

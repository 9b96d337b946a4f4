package postgres

import (
	"context"
	"fmt"
	"log"

	"talentbridge/ent"
	"talentbridge/ent/interview"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
)

// InterviewRepo implements the storage.InterviewRepository interface using Ent.
type InterviewRepo struct {
	client *ent.Client
}

// NewInterviewRepo creates a new InterviewRepo.
func NewInterviewRepo(client *ent.Client) *InterviewRepo {
	return &InterviewRepo{client: client}
}

// Compile-time check to ensure InterviewRepo implements InterviewRepository
var _ storage.InterviewRepository = (*InterviewRepo)(nil)

func (r *InterviewRepo) Create(ctx context.Context, req *dto.CreateInterviewRequest) (*ent.Interview, error) {
	create := r.client.Interview.Create().
		SetExternalUserID(req.UserID).
		SetStatus(interview.StatusInProgress).
		SetNillableJobID(req.JobID)
	if len(req.Questions) > 0 {
		create = create.SetQuestions(req.Questions)
	}

	created, err := create.Save(ctx)
	if err != nil {
		log.Printf("Error creating interview: %v\n", err)
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	log.Printf("Interview created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *InterviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Interview, error) {
	found, err := r.client.Interview.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving interview by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get interview by ID %s: %w", id, err)
	}
	return found, nil
}

func (r *InterviewRepo) ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Interview, error) {
	interviews, err := r.client.Interview.Query().
		Where(interview.ExternalUserID(externalUserID)).
		Order(ent.Desc(interview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		log.Printf("Error querying interviews by external user %q: %v\n", externalUserID, err)
		return nil, fmt.Errorf("failed to list interviews by external user: %w", err)
	}
	return interviews, nil
}

// Update is a single conditional UPDATE: it only lands while the
// interview is not completed, and the completion timestamp only lands
// while completed_at is still null. Answers are appended in the
// database, never rewritten. Returns affected rows.
func (r *InterviewRepo) Update(ctx context.Context, upd *storage.InterviewUpdate) (int, error) {
	update := r.client.Interview.Update().
		Where(interview.ID(upd.ID), interview.StatusNEQ(interview.StatusCompleted))
	if upd.CurrentIndex != nil {
		update = update.SetCurrentIndex(*upd.CurrentIndex)
	}
	if len(upd.AppendAnswers) > 0 {
		update = update.AppendAnswers(upd.AppendAnswers)
	}
	if upd.Status != nil {
		update = update.SetStatus(*upd.Status)
	}
	if upd.Score != nil {
		update = update.SetScore(*upd.Score)
	}
	if upd.Feedback != nil {
		update = update.SetFeedback(*upd.Feedback)
	}
	if upd.CompletedAt != nil {
		update = update.Where(interview.CompletedAtIsNil()).SetCompletedAt(*upd.CompletedAt)
	}

	affected, err := update.Save(ctx)
	if err != nil {
		log.Printf("Error updating interview %s: %v\n", upd.ID, err)
		return 0, fmt.Errorf("failed to update interview: %w", err)
	}
	return affected, nil
}

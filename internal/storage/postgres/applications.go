package postgres

import (
	"context"
	"fmt"
	"log"

	"talentbridge/ent"
	"talentbridge/ent/application"
	"talentbridge/ent/predicate"
	"talentbridge/internal/models"
	"talentbridge/internal/storage"

	"github.com/google/uuid"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using Ent.
type ApplicationRepo struct {
	client *ent.Client
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(client *ent.Client) *ApplicationRepo {
	return &ApplicationRepo{client: client}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// applicantPredicate matches rows of the given identity variant.
func applicantPredicate(applicant models.Applicant) predicate.Application {
	if applicant.Kind() == models.ApplicantExternal {
		return application.ExternalUserID(applicant.ExternalUserID())
	}
	return application.UserID(applicant.UserID())
}

func (r *ApplicationRepo) Create(ctx context.Context, params *storage.CreateApplicationParams) (*ent.Application, error) {
	create := r.client.Application.Create().
		SetJobID(params.JobID).
		SetStatus(application.StatusPending).
		SetNotes(params.Notes).
		SetNillableResumeID(params.ResumeID).
		SetNillableInterviewID(params.InterviewID).
		SetNillableMatchScore(params.MatchScore)

	if params.Applicant.Kind() == models.ApplicantExternal {
		create = create.SetExternalUserID(params.Applicant.ExternalUserID())
	} else {
		create = create.SetUserID(params.Applicant.UserID())
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating application (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create application: unique constraint or foreign key violation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Application, error) {
	app, err := r.client.Application.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}
	return app, nil
}

func (r *ApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID uuid.UUID, applicant models.Applicant) (*ent.Application, error) {
	app, err := r.client.Application.Query().
		Where(application.JobID(jobID), applicantPredicate(applicant)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error querying application by job %s and applicant: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to get application by job and applicant: %w", err)
	}
	return app, nil
}

func (r *ApplicationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*ent.Application, error) {
	apps, err := r.client.Application.Query().
		Where(application.UserID(userID)).
		Order(ent.Desc(application.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		log.Printf("Error querying applications by user ID %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to list applications by user: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepo) ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Application, error) {
	apps, err := r.client.Application.Query().
		Where(application.ExternalUserID(externalUserID)).
		Order(ent.Desc(application.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		log.Printf("Error querying applications by external user %q: %v\n", externalUserID, err)
		return nil, fmt.Errorf("failed to list applications by external user: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*ent.Application, error) {
	apps, err := r.client.Application.Query().
		Where(application.JobID(jobID)).
		Order(ent.Desc(application.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		log.Printf("Error querying applications by job ID %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}
	return apps, nil
}

// UpdateStatus applies a status transition and/or notes update as one
// conditional UPDATE. With FromStatus set, the write lands only while the
// stored status is still one of them; an already-set viewed_at is never
// overwritten. Returns affected rows.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, upd *storage.ApplicationStatusUpdate) (int, error) {
	update := r.client.Application.Update().
		Where(application.ID(upd.ID))
	if len(upd.FromStatus) > 0 {
		update = update.Where(application.StatusIn(upd.FromStatus...))
	}
	if upd.ToStatus != nil {
		update = update.SetStatus(*upd.ToStatus)
	}
	if upd.Notes != nil {
		update = update.SetNotes(*upd.Notes)
	}
	if upd.ViewedAt != nil {
		update = update.Where(application.ViewedAtIsNil()).SetViewedAt(*upd.ViewedAt)
	}

	affected, err := update.Save(ctx)
	if err != nil {
		log.Printf("Error updating application status for ID %s: %v\n", upd.ID, err)
		return 0, fmt.Errorf("failed to update application status: %w", err)
	}
	return affected, nil
}

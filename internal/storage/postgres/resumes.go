package postgres

import (
	"context"
	"fmt"
	"log"

	"talentbridge/ent"
	"talentbridge/ent/resume"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
)

// ResumeRepo implements the storage.ResumeRepository interface using Ent.
type ResumeRepo struct {
	client *ent.Client
}

// NewResumeRepo creates a new ResumeRepo.
func NewResumeRepo(client *ent.Client) *ResumeRepo {
	return &ResumeRepo{client: client}
}

// Compile-time check to ensure ResumeRepo implements ResumeRepository
var _ storage.ResumeRepository = (*ResumeRepo)(nil)

func (r *ResumeRepo) GetByExternalUserID(ctx context.Context, externalUserID string) (*ent.Resume, error) {
	found, err := r.client.Resume.Query().
		Where(resume.ExternalUserID(externalUserID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving resume by external user %q: %v\n", externalUserID, err)
		return nil, fmt.Errorf("failed to get resume by external user: %w", err)
	}
	return found, nil
}

func (r *ResumeRepo) Create(ctx context.Context, req *dto.UpsertResumeRequest) (*ent.Resume, error) {
	create := r.client.Resume.Create().
		SetExternalUserID(req.UserID)
	if req.ResumeText != nil {
		create = create.SetResumeText(*req.ResumeText)
	}
	if req.Skills != nil {
		create = create.SetSkills(*req.Skills)
	}
	if req.Education != nil {
		create = create.SetEducation(*req.Education)
	}
	if req.Experience != nil {
		create = create.SetExperience(*req.Experience)
	}
	if req.Contact != nil {
		create = create.SetContact(*req.Contact)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another upsert won the create race for this external user.
			return nil, fmt.Errorf("failed to create resume: %w", storage.ErrConflict)
		}
		log.Printf("Error creating resume: %v\n", err)
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	log.Printf("Resume created successfully with ID: %s", created.ID)
	return created, nil
}

// Update merge-updates only the fields present in the request; absent
// fields keep their stored values.
func (r *ResumeRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpsertResumeRequest) (*ent.Resume, error) {
	update := r.client.Resume.UpdateOneID(id)
	if req.ResumeText != nil {
		update = update.SetResumeText(*req.ResumeText)
	}
	if req.Skills != nil {
		update = update.SetSkills(*req.Skills)
	}
	if req.Education != nil {
		update = update.SetEducation(*req.Education)
	}
	if req.Experience != nil {
		update = update.SetExperience(*req.Experience)
	}
	if req.Contact != nil {
		update = update.SetContact(*req.Contact)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating resume %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return updated, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"talentbridge/ent"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"
)

type resumeService struct {
	resumeRepo storage.ResumeRepository
}

// NewResumeService creates a new instance of ResumeService.
func NewResumeService(resumeRepo storage.ResumeRepository) ResumeService {
	return &resumeService{resumeRepo: resumeRepo}
}

// UpsertByExternalUser creates or merge-updates the resume keyed by the
// external user id. Only fields present in the request overwrite stored
// values; absent fields (and JSON nulls) are left untouched. Two racing
// first calls are settled by the unique index: the loser retries as an
// update against the winner's row.
func (s *resumeService) UpsertByExternalUser(ctx context.Context, req *dto.UpsertResumeRequest) (*ent.Resume, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	existing, err := s.resumeRepo.GetByExternalUserID(ctx, req.UserID)
	if err == nil {
		updated, err := s.resumeRepo.Update(ctx, existing.ID, req)
		if err != nil {
			return nil, mapRepoError(err, "updating resume")
		}
		return updated, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "fetching resume for upsert")
	}

	created, err := s.resumeRepo.Create(ctx, req)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, storage.ErrConflict) {
		return nil, mapRepoError(err, "creating resume")
	}

	// Lost the create race; the row exists now, merge into it.
	log.Printf("UpsertByExternalUser: create race for %q, retrying as update", req.UserID)
	existing, err = s.resumeRepo.GetByExternalUserID(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "re-fetching resume after create race")
	}
	updated, err := s.resumeRepo.Update(ctx, existing.ID, req)
	if err != nil {
		return nil, mapRepoError(err, "updating resume after create race")
	}
	return updated, nil
}

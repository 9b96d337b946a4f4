package postgres

import (
	"context"
	"fmt"
	"log"

	"talentbridge/ent"
	"talentbridge/ent/job"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
)

// JobRepo implements the storage.JobRepository interface using Ent.
type JobRepo struct {
	client *ent.Client
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(client *ent.Client) *JobRepo {
	return &JobRepo{client: client}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error) {
	created, err := r.client.Job.Create().
		SetEnterpriseID(req.Caller.EnterpriseID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetLocation(req.Location).
		SetSalaryRange(req.SalaryRange).
		SetStatus(job.StatusDraft).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating job (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create job: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	found, err := r.client.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return found, nil
}

func (r *JobRepo) ListPublished(ctx context.Context, limit, offset int) ([]*ent.Job, error) {
	jobs, err := r.client.Job.Query().
		Where(job.StatusEQ(job.StatusPublished)).
		Order(ent.Desc(job.FieldPublishedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		log.Printf("Error querying published jobs: %v\n", err)
		return nil, fmt.Errorf("failed to list published jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepo) ListByEnterprise(ctx context.Context, enterpriseID uuid.UUID, status *job.Status, limit, offset int) ([]*ent.Job, error) {
	query := r.client.Job.Query().
		Where(job.EnterpriseID(enterpriseID)).
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		Offset(offset)
	if status != nil {
		query = query.Where(job.StatusEQ(*status))
	}

	jobs, err := query.All(ctx)
	if err != nil {
		log.Printf("Error querying jobs by enterprise ID %s: %v\n", enterpriseID, err)
		return nil, fmt.Errorf("failed to list jobs by enterprise: %w", err)
	}
	return jobs, nil
}

func (r *JobRepo) UpdateDetails(ctx context.Context, req *dto.UpdateJobDetailsRequest) (*ent.Job, error) {
	update := r.client.Job.UpdateOneID(req.ID)
	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.Location != nil {
		update = update.SetLocation(*req.Location)
	}
	if req.SalaryRange != nil {
		update = update.SetSalaryRange(*req.SalaryRange)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job details for ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job details: %w", err)
	}
	return updated, nil
}

// UpdateStatus is a single conditional UPDATE: it only lands when the
// stored status is one of upd.FromStatus, and the first-publish timestamp
// only lands while published_at is still null. Returns affected rows.
func (r *JobRepo) UpdateStatus(ctx context.Context, upd *storage.JobStatusUpdate) (int, error) {
	update := r.client.Job.Update().
		Where(job.ID(upd.ID), job.StatusIn(upd.FromStatus...)).
		SetStatus(upd.ToStatus)
	if upd.PublishedAt != nil {
		update = update.Where(job.PublishedAtIsNil()).SetPublishedAt(*upd.PublishedAt)
	}

	affected, err := update.Save(ctx)
	if err != nil {
		log.Printf("Error updating job status for ID %s: %v\n", upd.ID, err)
		return 0, fmt.Errorf("failed to update job status: %w", err)
	}
	return affected, nil
}

// DeleteDraft removes the job only while it is still a draft. Returns the
// number of rows deleted (0 means the job was gone or no longer a draft).
func (r *JobRepo) DeleteDraft(ctx context.Context, id uuid.UUID) (int, error) {
	deleted, err := r.client.Job.Delete().
		Where(job.ID(id), job.StatusEQ(job.StatusDraft)).
		Exec(ctx)
	if err != nil {
		log.Printf("Error deleting job with ID %s: %v\n", id, err)
		return 0, fmt.Errorf("failed to delete job: %w", err)
	}

	if deleted > 0 {
		log.Printf("Job deleted successfully with ID: %s", id)
	}
	return deleted, nil
}

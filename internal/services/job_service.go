package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/job"
	"talentbridge/internal/authz"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"
)

type jobService struct {
	jobRepo storage.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// CreateJob creates a new draft job for the caller's enterprise.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error) {
	if err := authz.Authorize(req.Caller, authz.ActionUpdate, authz.JobResource(req.Caller.EnterpriseID)); err != nil {
		return nil, ErrForbidden
	}

	created, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating job")
	}
	return created, nil
}

// GetJobByID retrieves a job. Jobs are publicly readable.
func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*ent.Job, error) {
	found, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}
	return found, nil
}

// ListPublishedJobs retrieves the public listing of published jobs.
func (s *jobService) ListPublishedJobs(ctx context.Context, req *dto.ListJobsRequest) ([]*ent.Job, error) {
	jobs, err := s.jobRepo.ListPublished(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, mapRepoError(err, "listing published jobs")
	}
	return jobs, nil
}

// ListJobsByEnterprise retrieves the caller's tenant listing, drafts included.
func (s *jobService) ListJobsByEnterprise(ctx context.Context, req *dto.ListJobsByEnterpriseRequest) ([]*ent.Job, error) {
	if err := authz.Authorize(req.Caller, authz.ActionRead, authz.JobResource(req.Caller.EnterpriseID)); err != nil {
		return nil, ErrForbidden
	}

	var status *job.Status
	if req.Status != nil {
		st := job.Status(*req.Status)
		status = &st
	}

	jobs, err := s.jobRepo.ListByEnterprise(ctx, req.Caller.EnterpriseID, status, req.Limit, req.Offset)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs by enterprise")
	}
	return jobs, nil
}

// UpdateJobDetails updates job fields without touching the status.
func (s *jobService) UpdateJobDetails(ctx context.Context, req *dto.UpdateJobDetailsRequest) (*ent.Job, error) {
	found, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}

	if err := authz.Authorize(req.Caller, authz.ActionUpdate, authz.JobResource(found.EnterpriseID)); err != nil {
		log.Printf("UpdateJobDetails: Forbidden attempt by caller %s on job %s", req.Caller.ID, req.ID)
		return nil, ErrForbidden
	}

	updated, err := s.jobRepo.UpdateDetails(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating job details")
	}
	return updated, nil
}

// TransitionJob moves a job between statuses: draft→published (validated),
// published→closed, closed→published. First publish sets published_at;
// re-publishing never resets it.
func (s *jobService) TransitionJob(ctx context.Context, req *dto.TransitionJobRequest) (*ent.Job, error) {
	target, err := resolveJobTarget(req)
	if err != nil {
		return nil, err
	}

	found, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}

	if err := authz.Authorize(req.Caller, authz.ActionUpdate, authz.JobResource(found.EnterpriseID)); err != nil {
		log.Printf("TransitionJob: Forbidden attempt by caller %s on job %s", req.Caller.ID, req.ID)
		return nil, ErrForbidden
	}

	if !isValidJobStatusTransition(found.Status, target) {
		log.Printf("TransitionJob: Invalid transition %s -> %s for job %s", found.Status, target, req.ID)
		return nil, fmt.Errorf("%w: cannot move job from %s to %s", ErrInvalidTransition, found.Status, target)
	}

	upd := &storage.JobStatusUpdate{
		ID:         req.ID,
		FromStatus: []job.Status{found.Status},
		ToStatus:   target,
	}
	if target == job.StatusPublished {
		if strings.TrimSpace(found.Title) == "" || strings.TrimSpace(found.Description) == "" {
			return nil, fmt.Errorf("%w: title and description are required to publish", ErrValidation)
		}
		if found.PublishedAt == nil {
			now := time.Now()
			upd.PublishedAt = &now
		}
	}

	affected, err := s.jobRepo.UpdateStatus(ctx, upd)
	if err != nil {
		return nil, mapRepoError(err, "updating job status")
	}
	if affected == 0 {
		// Lost a race: the status moved between read and write.
		return nil, fmt.Errorf("%w: job status changed concurrently", ErrConflict)
	}

	updated, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "re-fetching job after transition")
	}

	log.Printf("Job %s transitioned from %s to %s", req.ID, found.Status, target)
	return updated, nil
}

// DeleteJob removes a job, allowed only while it is still a draft so jobs
// carrying applications never vanish.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	found, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}

	if err := authz.Authorize(req.Caller, authz.ActionDelete, authz.JobResource(found.EnterpriseID)); err != nil {
		log.Printf("DeleteJob: Forbidden attempt by caller %s on job %s", req.Caller.ID, req.ID)
		return ErrForbidden
	}

	if found.Status != job.StatusDraft {
		return fmt.Errorf("%w: only draft jobs can be deleted", ErrConflict)
	}

	deleted, err := s.jobRepo.DeleteDraft(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, "deleting job")
	}
	if deleted == 0 {
		return fmt.Errorf("%w: job is no longer a draft", ErrConflict)
	}
	return nil
}

// resolveJobTarget maps the request's action or status field to a target
// job status. Exactly one of them must name a target.
func resolveJobTarget(req *dto.TransitionJobRequest) (job.Status, error) {
	switch req.Action {
	case "publish":
		return job.StatusPublished, nil
	case "close":
		return job.StatusClosed, nil
	case "":
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrValidation, req.Action)
	}

	switch req.Status {
	case string(job.StatusPublished), string(job.StatusClosed):
		return job.Status(req.Status), nil
	case "":
		return "", fmt.Errorf("%w: an action or target status is required", ErrValidation)
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}
}

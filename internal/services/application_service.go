package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"talentbridge/ent"
	"talentbridge/ent/application"
	"talentbridge/ent/job"
	"talentbridge/internal/authz"
	"talentbridge/internal/models"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

// ApplyToJob files an application for an internal (session) user.
// Applying is applicant-side only: tenant roles review applications, they
// do not file them.
func (s *applicationService) ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*ent.Application, error) {
	if req.Caller.Role != models.RoleStudent && req.Caller.Role != models.RoleAdmin {
		log.Printf("ApplyToJob: Role %s cannot apply to jobs", req.Caller.Role)
		return nil, ErrForbidden
	}

	applicant := models.InternalApplicant(req.Caller.ID)
	return s.createApplication(ctx, &storage.CreateApplicationParams{
		JobID:      req.JobID,
		Applicant:  applicant,
		ResumeID:   req.ResumeID,
		MatchScore: req.MatchScore,
		Notes:      req.Notes,
	})
}

// CreateExternalApplication files an application for an account-less
// external identity reaching us through the API-key bridge.
func (s *applicationService) CreateExternalApplication(ctx context.Context, req *dto.CreateExternalApplicationRequest) (*ent.Application, error) {
	applicant := models.ExternalApplicant(req.UserID)
	return s.createApplication(ctx, &storage.CreateApplicationParams{
		JobID:       req.JobID,
		Applicant:   applicant,
		ResumeID:    req.ResumeID,
		InterviewID: req.InterviewID,
		MatchScore:  req.MatchScore,
		Notes:       req.Notes,
	})
}

// createApplication enforces the shared creation rules for both identity
// variants: the job must be published, and at most one application may
// exist per (identity, job) pair. The duplicate pre-check gives the
// friendly error; the unique index settles races.
func (s *applicationService) createApplication(ctx context.Context, params *storage.CreateApplicationParams) (*ent.Application, error) {
	jobFound, err := s.jobRepo.GetByID(ctx, params.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", params.JobID))
	}
	if jobFound.Status != job.StatusPublished {
		log.Printf("createApplication: Attempt to apply to non-published job %s (Status: %s)", params.JobID, jobFound.Status)
		return nil, fmt.Errorf("%w: job is not available for applications", ErrNotFound)
	}

	_, err = s.appRepo.FindByJobAndApplicant(ctx, params.JobID, params.Applicant)
	if err == nil {
		log.Printf("createApplication: Duplicate application for job %s", params.JobID)
		return nil, fmt.Errorf("%w: already applied to job", ErrConflict)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking for existing application")
	}

	created, err := s.appRepo.Create(ctx, params)
	if err != nil {
		// A concurrent request may have won the unique index race.
		return nil, mapRepoError(err, "creating application")
	}
	return created, nil
}

// GetApplicationByID retrieves an application, checking ownership. A
// denial and a missing row look identical to the caller.
func (s *applicationService) GetApplicationByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*ent.Application, error) {
	app, jobFound, err := s.fetchWithJob(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(req.Caller, authz.ActionRead, applicationResource(app, jobFound)); err != nil {
		log.Printf("GetApplicationByID: Forbidden attempt by caller %s on application %s", req.Caller.ID, req.ID)
		return nil, ErrForbidden
	}
	return app, nil
}

// ListApplicationsByUser retrieves the caller's own applications.
func (s *applicationService) ListApplicationsByUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]*ent.Application, error) {
	apps, err := s.appRepo.ListByUser(ctx, req.Caller.ID, req.Limit, req.Offset)
	if err != nil {
		return nil, mapRepoError(err, "listing applications by user")
	}
	return apps, nil
}

// ListApplicationsByJob retrieves applications for a job, owner view.
func (s *applicationService) ListApplicationsByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.Application, error) {
	jobFound, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for listing applications", req.JobID))
	}

	if err := authz.Authorize(req.Caller, authz.ActionRead, authz.JobResource(jobFound.EnterpriseID)); err != nil {
		log.Printf("ListApplicationsByJob: Forbidden attempt by caller %s on job %s", req.Caller.ID, req.JobID)
		return nil, ErrForbidden
	}

	apps, err := s.appRepo.ListByJob(ctx, req.JobID, req.Limit, req.Offset)
	if err != nil {
		return nil, mapRepoError(err, "listing applications by job")
	}
	return apps, nil
}

// ListExternalApplications lists applications filed by an external identity.
func (s *applicationService) ListExternalApplications(ctx context.Context, req *dto.ListExternalApplicationsRequest) ([]*ent.Application, error) {
	apps, err := s.appRepo.ListByExternalUser(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "listing applications by external user")
	}
	return apps, nil
}

// UpdateApplication applies a status transition and/or notes update
// atomically. A nil status is a notes-only update. First entry into
// viewed records viewed_at; terminal states reject every exit.
func (s *applicationService) UpdateApplication(ctx context.Context, req *dto.UpdateApplicationRequest) (*ent.Application, error) {
	app, jobFound, err := s.fetchWithJob(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	var target *application.Status
	if req.Status != nil {
		st := application.Status(*req.Status)
		target = &st
	}

	action := authz.ActionUpdate
	if target != nil {
		switch *target {
		case application.StatusOffered, application.StatusRejected:
			action = authz.ActionDecide
		case application.StatusWithdrawn:
			action = authz.ActionWithdraw
		}
	}

	if err := authz.Authorize(req.Caller, action, applicationResource(app, jobFound)); err != nil {
		log.Printf("UpdateApplication: Forbidden attempt by caller %s on application %s", req.Caller.ID, req.ID)
		return nil, ErrForbidden
	}

	if target == nil && req.Notes == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	upd := &storage.ApplicationStatusUpdate{ID: req.ID, Notes: req.Notes}
	if target != nil {
		if !isValidApplicationStatusTransition(app.Status, *target) {
			log.Printf("UpdateApplication: Invalid transition %s -> %s for application %s", app.Status, *target, req.ID)
			return nil, fmt.Errorf("%w: cannot move application from %s to %s", ErrInvalidTransition, app.Status, *target)
		}
		upd.FromStatus = []application.Status{app.Status}
		upd.ToStatus = target
		if *target == application.StatusViewed && app.ViewedAt == nil {
			now := time.Now()
			upd.ViewedAt = &now
		}
	}

	affected, err := s.appRepo.UpdateStatus(ctx, upd)
	if err != nil {
		return nil, mapRepoError(err, "updating application")
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: application status changed concurrently", ErrConflict)
	}

	updated, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "re-fetching application after update")
	}
	return updated, nil
}

// WithdrawApplication is the applicant-side terminal transition.
func (s *applicationService) WithdrawApplication(ctx context.Context, req *dto.WithdrawApplicationRequest) (*ent.Application, error) {
	status := string(application.StatusWithdrawn)
	return s.UpdateApplication(ctx, &dto.UpdateApplicationRequest{
		ID:     req.ID,
		Caller: req.Caller,
		Status: &status,
	})
}

// BatchTransition moves a set of applications to the status named by the
// action. Every id is independently re-checked against ownership and the
// transition table; ids outside the caller's tenant are skipped silently
// so the count never leaks cross-tenant existence. Failure on one id does
// not block the rest.
func (s *applicationService) BatchTransition(ctx context.Context, req *dto.BatchTransitionRequest) (*dto.BatchTransitionResponse, error) {
	target, err := resolveBatchTarget(req.Action)
	if err != nil {
		return nil, err
	}

	resp := &dto.BatchTransitionResponse{
		Requested:  len(req.IDs),
		UpdatedIDs: []uuid.UUID{},
	}

	for _, id := range req.IDs {
		app, jobFound, err := s.fetchWithJob(ctx, id)
		if err != nil {
			continue // missing ids are skipped, not reported
		}

		action := authz.ActionUpdate
		if target == application.StatusOffered || target == application.StatusRejected {
			action = authz.ActionDecide
		}
		if err := authz.Authorize(req.Caller, action, applicationResource(app, jobFound)); err != nil {
			continue // foreign ids are skipped, not reported
		}

		if !isValidApplicationStatusTransition(app.Status, target) {
			continue
		}

		upd := &storage.ApplicationStatusUpdate{
			ID:         id,
			FromStatus: []application.Status{app.Status},
			ToStatus:   &target,
		}
		if target == application.StatusViewed && app.ViewedAt == nil {
			now := time.Now()
			upd.ViewedAt = &now
		}

		affected, err := s.appRepo.UpdateStatus(ctx, upd)
		if err != nil || affected == 0 {
			continue
		}

		resp.Updated++
		resp.UpdatedIDs = append(resp.UpdatedIDs, id)
	}

	log.Printf("BatchTransition: %d of %d applications moved to %s", resp.Updated, resp.Requested, target)
	return resp, nil
}

// fetchWithJob loads an application together with its job, which carries
// the tenant reference every ownership check needs.
func (s *applicationService) fetchWithJob(ctx context.Context, id uuid.UUID) (*ent.Application, *ent.Job, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching application %s", id))
	}

	jobFound, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		log.Printf("fetchWithJob: Error fetching job %s for application %s: %v", app.JobID, id, err)
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching associated job %s", app.JobID))
	}
	return app, jobFound, nil
}

// applicationResource builds the resolver view of an application: tenant
// reference resolved transitively through its job, applicant as the
// identity union.
func applicationResource(app *ent.Application, jobFound *ent.Job) authz.Resource {
	var applicant models.Applicant
	if app.ExternalUserID != "" {
		applicant = models.ExternalApplicant(app.ExternalUserID)
	} else if app.UserID != uuid.Nil {
		applicant = models.InternalApplicant(app.UserID)
	}
	return authz.ApplicationResource(jobFound.EnterpriseID, applicant)
}

// resolveBatchTarget maps a batch action verb to the target status.
func resolveBatchTarget(action string) (application.Status, error) {
	switch action {
	case "view":
		return application.StatusViewed, nil
	case "interview":
		return application.StatusInterviewing, nil
	case "offer":
		return application.StatusOffered, nil
	case "reject":
		return application.StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: unknown batch action %q", ErrValidation, action)
	}
}

package services

import (
	"errors"
	"fmt"
	"log"

	"talentbridge/ent/application"
	"talentbridge/ent/job"
	"talentbridge/internal/storage"
)

// isValidJobStatusTransition defines the allowed job status changes.
// Archived is reserved: nothing transitions into or out of it here.
func isValidJobStatusTransition(from, to job.Status) bool {
	switch from {
	case job.StatusDraft:
		return to == job.StatusPublished
	case job.StatusPublished:
		return to == job.StatusClosed
	case job.StatusClosed:
		// Re-publish. Does not reset published_at.
		return to == job.StatusPublished
	default:
		return false
	}
}

// isValidApplicationStatusTransition defines the allowed application
// status changes. Offered, rejected and withdrawn are terminal.
func isValidApplicationStatusTransition(from, to application.Status) bool {
	switch from {
	case application.StatusPending:
		return to == application.StatusViewed || to == application.StatusInterviewing ||
			to == application.StatusOffered || to == application.StatusRejected ||
			to == application.StatusWithdrawn
	case application.StatusViewed:
		return to == application.StatusInterviewing || to == application.StatusOffered ||
			to == application.StatusRejected || to == application.StatusWithdrawn
	case application.StatusInterviewing:
		return to == application.StatusOffered || to == application.StatusRejected ||
			to == application.StatusWithdrawn
	default:
		return false
	}
}

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

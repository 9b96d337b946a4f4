package services

import (
	"testing"

	"talentbridge/ent/application"
	"talentbridge/ent/job"

	"github.com/stretchr/testify/assert"
)

func TestIsValidJobStatusTransition(t *testing.T) {
	tests := []struct {
		from    job.Status
		to      job.Status
		allowed bool
	}{
		{job.StatusDraft, job.StatusPublished, true},
		{job.StatusPublished, job.StatusClosed, true},
		{job.StatusClosed, job.StatusPublished, true}, // re-publish

		{job.StatusDraft, job.StatusClosed, false},
		{job.StatusDraft, job.StatusDraft, false},
		{job.StatusPublished, job.StatusPublished, false},
		{job.StatusPublished, job.StatusDraft, false},
		{job.StatusClosed, job.StatusClosed, false},
		{job.StatusClosed, job.StatusDraft, false},
		{job.StatusArchived, job.StatusPublished, false},
		{job.StatusPublished, job.StatusArchived, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, isValidJobStatusTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestIsValidApplicationStatusTransition(t *testing.T) {
	terminal := []application.Status{
		application.StatusOffered,
		application.StatusRejected,
		application.StatusWithdrawn,
	}
	all := []application.Status{
		application.StatusPending,
		application.StatusViewed,
		application.StatusInterviewing,
		application.StatusOffered,
		application.StatusRejected,
		application.StatusWithdrawn,
	}

	tests := []struct {
		from    application.Status
		to      application.Status
		allowed bool
	}{
		{application.StatusPending, application.StatusViewed, true},
		{application.StatusPending, application.StatusInterviewing, true},
		{application.StatusPending, application.StatusOffered, true},
		{application.StatusPending, application.StatusRejected, true},
		{application.StatusPending, application.StatusWithdrawn, true},

		{application.StatusViewed, application.StatusInterviewing, true},
		{application.StatusViewed, application.StatusOffered, true},
		{application.StatusViewed, application.StatusRejected, true},
		{application.StatusViewed, application.StatusWithdrawn, true},
		{application.StatusViewed, application.StatusPending, false},

		{application.StatusInterviewing, application.StatusOffered, true},
		{application.StatusInterviewing, application.StatusRejected, true},
		{application.StatusInterviewing, application.StatusWithdrawn, true},
		{application.StatusInterviewing, application.StatusViewed, false},
		{application.StatusInterviewing, application.StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, isValidApplicationStatusTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}

	// Terminal states reject every exit, including self-transitions.
	for _, from := range terminal {
		for _, to := range all {
			assert.False(t, isValidApplicationStatusTransition(from, to),
				"%s -> %s should be rejected", from, to)
		}
	}
}

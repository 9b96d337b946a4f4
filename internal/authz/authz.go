// Package authz is the single ownership resolver gating every mutating
// operation. It is a pure decision function: no storage access, no side
// effects, and one denial value regardless of why the check failed, so a
// cross-tenant caller cannot distinguish "missing" from "not yours".
package authz

import (
	"errors"

	"talentbridge/internal/models"

	"github.com/google/uuid"
)

// ErrDenied is the only failure the resolver produces.
var ErrDenied = errors.New("not authorized")

// Action names what the caller is trying to do to the resource.
type Action string

const (
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionDecide   Action = "decide" // offer/reject, enterprise side only
	ActionWithdraw Action = "withdraw"
)

// ResourceKind discriminates the resources the resolver understands.
type ResourceKind string

const (
	KindJob         ResourceKind = "job"
	KindApplication ResourceKind = "application"
)

// Resource is the target of an authorization check with its tenant
// reference already resolved: for an application, EnterpriseID is the
// enterprise owning its job.
type Resource struct {
	Kind         ResourceKind
	EnterpriseID uuid.UUID
	Applicant    models.Applicant // zero value for jobs
}

// JobResource builds the resource view of a job.
func JobResource(enterpriseID uuid.UUID) Resource {
	return Resource{Kind: KindJob, EnterpriseID: enterpriseID}
}

// ApplicationResource builds the resource view of an application, with the
// tenant reference resolved transitively through its job.
func ApplicationResource(jobEnterpriseID uuid.UUID, applicant models.Applicant) Resource {
	return Resource{Kind: KindApplication, EnterpriseID: jobEnterpriseID, Applicant: applicant}
}

// Authorize decides whether the caller may perform action on the resource.
// Rules, first match wins:
//  1. admin: always allowed.
//  2. enterprise: allowed when the caller's enterprise owns the resource,
//     except withdraw, which belongs to the applicant alone.
//  3. student: allowed to read or withdraw their own application.
//  4. otherwise: denied.
func Authorize(caller models.Caller, action Action, res Resource) error {
	if caller.Role == models.RoleAdmin {
		return nil
	}

	if caller.Role == models.RoleEnterprise {
		if caller.EnterpriseID != uuid.Nil && caller.EnterpriseID == res.EnterpriseID && action != ActionWithdraw {
			return nil
		}
		return ErrDenied
	}

	if caller.Role == models.RoleStudent && res.Kind == KindApplication {
		if res.Applicant.IsUser(caller.ID) && (action == ActionRead || action == ActionWithdraw) {
			return nil
		}
	}

	return ErrDenied
}

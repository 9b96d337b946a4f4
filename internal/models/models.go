package models

import "github.com/google/uuid"

// Role is the tenant role carried by an authenticated session.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEnterprise Role = "enterprise"
	RoleSchool     Role = "school"
	RoleGovernment Role = "government"
	RoleStudent    Role = "student"
)

// IsValid checks whether the string is a known role value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEnterprise, RoleSchool, RoleGovernment, RoleStudent:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// Caller is the authenticated identity every handler passes into the
// service layer. Sessions resolve to a full caller; the API-key surface
// never constructs one (it carries only an external user id).
type Caller struct {
	Role         Role
	ID           uuid.UUID
	EnterpriseID uuid.UUID
	SchoolID     uuid.UUID
}

// ApplicantKind discriminates the two identity variants an application,
// resume or interview may reference.
type ApplicantKind int

const (
	ApplicantNone ApplicantKind = iota
	ApplicantInternal
	ApplicantExternal
)

// Applicant is a tagged union over {Internal(userID) | External(externalUserID)}.
// An external id is a weak reference: a lookup key with no row behind it.
type Applicant struct {
	kind       ApplicantKind
	userID     uuid.UUID
	externalID string
}

// InternalApplicant references an internal User row.
func InternalApplicant(userID uuid.UUID) Applicant {
	return Applicant{kind: ApplicantInternal, userID: userID}
}

// ExternalApplicant references an account-less external identity.
func ExternalApplicant(externalUserID string) Applicant {
	return Applicant{kind: ApplicantExternal, externalID: externalUserID}
}

func (a Applicant) Kind() ApplicantKind { return a.kind }

// UserID returns the internal user id; valid only for ApplicantInternal.
func (a Applicant) UserID() uuid.UUID { return a.userID }

// ExternalUserID returns the external key; valid only for ApplicantExternal.
func (a Applicant) ExternalUserID() string { return a.externalID }

// IsUser reports whether the applicant is the given internal user.
func (a Applicant) IsUser(id uuid.UUID) bool {
	return a.kind == ApplicantInternal && a.userID == id
}

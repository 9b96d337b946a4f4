package authz_test

import (
	"testing"

	"talentbridge/internal/authz"
	"talentbridge/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	enterpriseID := uuid.New()
	otherEnterpriseID := uuid.New()
	studentID := uuid.New()
	otherStudentID := uuid.New()

	admin := models.Caller{Role: models.RoleAdmin, ID: uuid.New()}
	enterprise := models.Caller{Role: models.RoleEnterprise, ID: uuid.New(), EnterpriseID: enterpriseID}
	scopelessEnterprise := models.Caller{Role: models.RoleEnterprise, ID: uuid.New()}
	student := models.Caller{Role: models.RoleStudent, ID: studentID}
	school := models.Caller{Role: models.RoleSchool, ID: uuid.New(), SchoolID: uuid.New()}
	government := models.Caller{Role: models.RoleGovernment, ID: uuid.New()}

	ownJob := authz.JobResource(enterpriseID)
	foreignJob := authz.JobResource(otherEnterpriseID)
	ownApplication := authz.ApplicationResource(enterpriseID, models.InternalApplicant(studentID))
	foreignApplication := authz.ApplicationResource(otherEnterpriseID, models.InternalApplicant(otherStudentID))
	externalApplication := authz.ApplicationResource(enterpriseID, models.ExternalApplicant("ext-user-1"))

	tests := []struct {
		name    string
		caller  models.Caller
		action  authz.Action
		res     authz.Resource
		allowed bool
	}{
		{"admin can do anything", admin, authz.ActionDelete, foreignJob, true},
		{"admin can decide foreign applications", admin, authz.ActionDecide, foreignApplication, true},

		{"enterprise can update own job", enterprise, authz.ActionUpdate, ownJob, true},
		{"enterprise can delete own job", enterprise, authz.ActionDelete, ownJob, true},
		{"enterprise cannot touch foreign job", enterprise, authz.ActionUpdate, foreignJob, false},
		{"enterprise can decide application on own job", enterprise, authz.ActionDecide, ownApplication, true},
		{"enterprise can decide external application on own job", enterprise, authz.ActionDecide, externalApplication, true},
		{"enterprise cannot decide foreign application", enterprise, authz.ActionDecide, foreignApplication, false},
		{"enterprise cannot withdraw even on own job", enterprise, authz.ActionWithdraw, ownApplication, false},
		{"enterprise without scope is denied", scopelessEnterprise, authz.ActionUpdate, ownJob, false},

		{"student can read own application", student, authz.ActionRead, ownApplication, true},
		{"student can withdraw own application", student, authz.ActionWithdraw, ownApplication, true},
		{"student cannot decide own application", student, authz.ActionDecide, ownApplication, false},
		{"student cannot update own application", student, authz.ActionUpdate, ownApplication, false},
		{"student cannot read foreign application", student, authz.ActionRead, foreignApplication, false},
		{"student cannot touch jobs", student, authz.ActionUpdate, ownJob, false},
		{"student cannot read external application", student, authz.ActionRead, externalApplication, false},

		{"school is denied", school, authz.ActionRead, ownApplication, false},
		{"government is denied", government, authz.ActionUpdate, ownJob, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.Authorize(tt.caller, tt.action, tt.res)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, authz.ErrDenied)
			}
		})
	}
}

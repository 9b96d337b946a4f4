// Code generated by ent, DO NOT EDIT.

package ent

import (
	"talentbridge/ent/application"
	"talentbridge/ent/conversation"
	"talentbridge/ent/enterprise"
	"talentbridge/ent/interview"
	"talentbridge/ent/job"
	"talentbridge/ent/resume"
	"talentbridge/ent/schema"
	"talentbridge/ent/school"
	"talentbridge/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescNotes is the schema descriptor for notes field.
	applicationDescNotes := applicationFields[8].Descriptor()
	// application.DefaultNotes holds the default value on creation for the notes field.
	application.DefaultNotes = applicationDescNotes.Default.(string)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[10].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[11].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescExternalID is the schema descriptor for external_id field.
	conversationDescExternalID := conversationFields[1].Descriptor()
	// conversation.ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	conversation.ExternalIDValidator = conversationDescExternalID.Validators[0].(func(string) error)
	// conversationDescTitle is the schema descriptor for title field.
	conversationDescTitle := conversationFields[4].Descriptor()
	// conversation.DefaultTitle holds the default value on creation for the title field.
	conversation.DefaultTitle = conversationDescTitle.Default.(string)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[6].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[7].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationFields[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	enterpriseFields := schema.Enterprise{}.Fields()
	_ = enterpriseFields
	// enterpriseDescName is the schema descriptor for name field.
	enterpriseDescName := enterpriseFields[1].Descriptor()
	// enterprise.NameValidator is a validator for the "name" field. It is called by the builders before save.
	enterprise.NameValidator = enterpriseDescName.Validators[0].(func(string) error)
	// enterpriseDescCreatedAt is the schema descriptor for created_at field.
	enterpriseDescCreatedAt := enterpriseFields[4].Descriptor()
	// enterprise.DefaultCreatedAt holds the default value on creation for the created_at field.
	enterprise.DefaultCreatedAt = enterpriseDescCreatedAt.Default.(func() time.Time)
	// enterpriseDescUpdatedAt is the schema descriptor for updated_at field.
	enterpriseDescUpdatedAt := enterpriseFields[5].Descriptor()
	// enterprise.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	enterprise.DefaultUpdatedAt = enterpriseDescUpdatedAt.Default.(func() time.Time)
	// enterprise.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	enterprise.UpdateDefaultUpdatedAt = enterpriseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// enterpriseDescID is the schema descriptor for id field.
	enterpriseDescID := enterpriseFields[0].Descriptor()
	// enterprise.DefaultID holds the default value on creation for the id field.
	enterprise.DefaultID = enterpriseDescID.Default.(func() uuid.UUID)
	interviewFields := schema.Interview{}.Fields()
	_ = interviewFields
	// interviewDescCurrentIndex is the schema descriptor for current_index field.
	interviewDescCurrentIndex := interviewFields[5].Descriptor()
	// interview.DefaultCurrentIndex holds the default value on creation for the current_index field.
	interview.DefaultCurrentIndex = interviewDescCurrentIndex.Default.(int)
	// interview.CurrentIndexValidator is a validator for the "current_index" field. It is called by the builders before save.
	interview.CurrentIndexValidator = interviewDescCurrentIndex.Validators[0].(func(int) error)
	// interviewDescFeedback is the schema descriptor for feedback field.
	interviewDescFeedback := interviewFields[9].Descriptor()
	// interview.DefaultFeedback holds the default value on creation for the feedback field.
	interview.DefaultFeedback = interviewDescFeedback.Default.(string)
	// interviewDescCreatedAt is the schema descriptor for created_at field.
	interviewDescCreatedAt := interviewFields[11].Descriptor()
	// interview.DefaultCreatedAt holds the default value on creation for the created_at field.
	interview.DefaultCreatedAt = interviewDescCreatedAt.Default.(func() time.Time)
	// interviewDescUpdatedAt is the schema descriptor for updated_at field.
	interviewDescUpdatedAt := interviewFields[12].Descriptor()
	// interview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interview.DefaultUpdatedAt = interviewDescUpdatedAt.Default.(func() time.Time)
	// interview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interview.UpdateDefaultUpdatedAt = interviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// interviewDescID is the schema descriptor for id field.
	interviewDescID := interviewFields[0].Descriptor()
	// interview.DefaultID holds the default value on creation for the id field.
	interview.DefaultID = interviewDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[9].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	resumeFields := schema.Resume{}.Fields()
	_ = resumeFields
	// resumeDescResumeText is the schema descriptor for resume_text field.
	resumeDescResumeText := resumeFields[3].Descriptor()
	// resume.DefaultResumeText holds the default value on creation for the resume_text field.
	resume.DefaultResumeText = resumeDescResumeText.Default.(string)
	// resumeDescCreatedAt is the schema descriptor for created_at field.
	resumeDescCreatedAt := resumeFields[8].Descriptor()
	// resume.DefaultCreatedAt holds the default value on creation for the created_at field.
	resume.DefaultCreatedAt = resumeDescCreatedAt.Default.(func() time.Time)
	// resumeDescUpdatedAt is the schema descriptor for updated_at field.
	resumeDescUpdatedAt := resumeFields[9].Descriptor()
	// resume.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	resume.DefaultUpdatedAt = resumeDescUpdatedAt.Default.(func() time.Time)
	// resume.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	resume.UpdateDefaultUpdatedAt = resumeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// resumeDescID is the schema descriptor for id field.
	resumeDescID := resumeFields[0].Descriptor()
	// resume.DefaultID holds the default value on creation for the id field.
	resume.DefaultID = resumeDescID.Default.(func() uuid.UUID)
	schoolFields := schema.School{}.Fields()
	_ = schoolFields
	// schoolDescName is the schema descriptor for name field.
	schoolDescName := schoolFields[1].Descriptor()
	// school.NameValidator is a validator for the "name" field. It is called by the builders before save.
	school.NameValidator = schoolDescName.Validators[0].(func(string) error)
	// schoolDescCreatedAt is the schema descriptor for created_at field.
	schoolDescCreatedAt := schoolFields[3].Descriptor()
	// school.DefaultCreatedAt holds the default value on creation for the created_at field.
	school.DefaultCreatedAt = schoolDescCreatedAt.Default.(func() time.Time)
	// schoolDescUpdatedAt is the schema descriptor for updated_at field.
	schoolDescUpdatedAt := schoolFields[4].Descriptor()
	// school.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	school.DefaultUpdatedAt = schoolDescUpdatedAt.Default.(func() time.Time)
	// school.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	school.UpdateDefaultUpdatedAt = schoolDescUpdatedAt.UpdateDefault.(func() time.Time)
	// schoolDescID is the schema descriptor for id field.
	schoolDescID := schoolFields[0].Descriptor()
	// school.DefaultID holds the default value on creation for the id field.
	school.DefaultID = schoolDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}

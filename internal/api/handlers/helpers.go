package handlers

import (
	"fmt"
	"talentbridge/ent"
	"talentbridge/internal/transport/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of [%s]", fieldName, fieldError.Param())
		case "uuid":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		}
	}
	return errorsMap
}

// MapUserModelToUserResponse converts a ent.User to a dto.UserResponse
func MapUserModelToUserResponse(user *ent.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.EnterpriseID != uuid.Nil {
		id := user.EnterpriseID
		resp.EnterpriseID = &id
	}
	if user.SchoolID != uuid.Nil {
		id := user.SchoolID
		resp.SchoolID = &id
	}
	return resp
}

// MapJobModelToJobResponse converts a ent.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *ent.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:           job.ID,
		EnterpriseID: job.EnterpriseID,
		Title:        job.Title,
		Description:  job.Description,
		Location:     job.Location,
		SalaryRange:  job.SalaryRange,
		Status:       string(job.Status),
		PublishedAt:  job.PublishedAt,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}

// MapApplicationModelToResponse converts a ent.Application to a
// dto.ApplicationResponse. Exactly one identity field survives the mapping.
func MapApplicationModelToResponse(app *ent.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:             app.ID,
		JobID:          app.JobID,
		ExternalUserID: app.ExternalUserID,
		Status:         string(app.Status),
		MatchScore:     app.MatchScore,
		Notes:          app.Notes,
		ViewedAt:       app.ViewedAt,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
	if app.UserID != uuid.Nil {
		id := app.UserID
		resp.UserID = &id
	}
	if app.ResumeID != uuid.Nil {
		id := app.ResumeID
		resp.ResumeID = &id
	}
	if app.InterviewID != uuid.Nil {
		id := app.InterviewID
		resp.InterviewID = &id
	}
	return resp
}

// MapResumeModelToResponse converts a ent.Resume to a dto.ResumeResponse
func MapResumeModelToResponse(resume *ent.Resume) dto.ResumeResponse {
	resp := dto.ResumeResponse{
		ID:             resume.ID,
		ExternalUserID: resume.ExternalUserID,
		ResumeText:     resume.ResumeText,
		Skills:         resume.Skills,
		Education:      resume.Education,
		Experience:     resume.Experience,
		Contact:        resume.Contact,
		CreatedAt:      resume.CreatedAt,
		UpdatedAt:      resume.UpdatedAt,
	}
	if resume.UserID != uuid.Nil {
		id := resume.UserID
		resp.UserID = &id
	}
	return resp
}

// MapInterviewModelToResponse converts a ent.Interview to a dto.InterviewResponse
func MapInterviewModelToResponse(interview *ent.Interview) dto.InterviewResponse {
	resp := dto.InterviewResponse{
		ID:             interview.ID,
		ExternalUserID: interview.ExternalUserID,
		Status:         string(interview.Status),
		CurrentIndex:   interview.CurrentIndex,
		Questions:      interview.Questions,
		Answers:        interview.Answers,
		Score:          interview.Score,
		Feedback:       interview.Feedback,
		CompletedAt:    interview.CompletedAt,
		CreatedAt:      interview.CreatedAt,
		UpdatedAt:      interview.UpdatedAt,
	}
	if interview.JobID != uuid.Nil {
		id := interview.JobID
		resp.JobID = &id
	}
	return resp
}

// MapConversationModelToResponse converts a ent.Conversation to a
// dto.ConversationResponse. The internal row id stays internal; clients
// only ever see the external conversation id they supplied.
func MapConversationModelToResponse(conv *ent.Conversation) dto.ConversationResponse {
	return dto.ConversationResponse{
		ConversationID: conv.ExternalID,
		ExternalUserID: conv.ExternalUserID,
		Title:          conv.Title,
		Messages:       conv.Messages,
		CreatedAt:      conv.CreatedAt,
		UpdatedAt:      conv.UpdatedAt,
	}
}

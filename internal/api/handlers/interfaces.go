// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the auth/user routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	GetMe(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	ListJobs(c *gin.Context)
	ListMyJobs(c *gin.Context)
	UpdateJobDetails(c *gin.Context)
	TransitionJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application
// routes, session and open surface alike.
type ApplicationHandlerInterface interface {
	ApplyToJob(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ListMyApplications(c *gin.Context)
	ListJobApplications(c *gin.Context)
	UpdateApplication(c *gin.Context)
	WithdrawApplication(c *gin.Context)
	BatchTransition(c *gin.Context)
	CreateExternalApplication(c *gin.Context)
	ListExternalApplications(c *gin.Context)
}

// ResumeHandlerInterface defines the methods needed by the open resume routes.
type ResumeHandlerInterface interface {
	UpsertResume(c *gin.Context)
}

// InterviewHandlerInterface defines the methods needed by the open interview routes.
type InterviewHandlerInterface interface {
	CreateInterview(c *gin.Context)
	GetInterviewByID(c *gin.Context)
	ListInterviews(c *gin.Context)
	UpdateInterview(c *gin.Context)
}

// ConversationHandlerInterface defines the methods needed by the open conversation routes.
type ConversationHandlerInterface interface {
	UpsertConversation(c *gin.Context)
	UpsertConversationByID(c *gin.Context)
	GetConversation(c *gin.Context)
	ListConversations(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ ResumeHandlerInterface = (*ResumeHandler)(nil)
var _ InterviewHandlerInterface = (*InterviewHandler)(nil)
var _ ConversationHandlerInterface = (*ConversationHandler)(nil)

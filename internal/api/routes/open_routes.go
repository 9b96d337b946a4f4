package routes

import (
	"talentbridge/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterOpenRoutes registers the machine-to-machine surface used by the
// conversational agent. Every route sits behind the API key middleware.
func RegisterOpenRoutes(
	router *gin.Engine,
	resumeHandler handlers.ResumeHandlerInterface,
	interviewHandler handlers.InterviewHandlerInterface,
	conversationHandler handlers.ConversationHandlerInterface,
	applicationHandler handlers.ApplicationHandlerInterface,
	apiKeyMiddleware gin.HandlerFunc,
) {
	open := router.Group("/open")
	open.Use(apiKeyMiddleware)
	{
		open.POST("/resumes", resumeHandler.UpsertResume)

		open.POST("/interviews", interviewHandler.CreateInterview)
		open.GET("/interviews", interviewHandler.ListInterviews)
		open.GET("/interviews/:id", interviewHandler.GetInterviewByID)
		open.PATCH("/interviews/:id", interviewHandler.UpdateInterview)

		open.POST("/conversations", conversationHandler.UpsertConversation)
		open.GET("/conversations", conversationHandler.ListConversations)
		open.GET("/conversations/:externalId", conversationHandler.GetConversation)
		open.PUT("/conversations/:externalId", conversationHandler.UpsertConversationByID)

		open.POST("/applications", applicationHandler.CreateExternalApplication)
		open.GET("/applications", applicationHandler.ListExternalApplications)
	}
}

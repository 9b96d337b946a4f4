package routes

import (
	"talentbridge/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs. Reading a single
// job or the published listing is public; everything else requires a session.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("/", jobHandler.ListJobs)      // Published jobs, paginated
		jobs.GET("/:id", jobHandler.GetJobByID) // Any job by id

		authed := jobs.Group("")
		authed.Use(authMiddleware)
		{
			authed.POST("/", jobHandler.CreateJob)                              // New draft for the caller's enterprise
			authed.GET("/my", jobHandler.ListMyJobs)                            // Tenant listing, any status
			authed.PUT("/:id", jobHandler.UpdateJobDetails)                     // Field updates
			authed.PATCH("/:id", jobHandler.TransitionJob)                      // publish / close
			authed.DELETE("/:id", jobHandler.DeleteJob)                         // Draft only
			authed.POST("/:id/apply", applicationHandler.ApplyToJob)            // Student application
			authed.GET("/:id/applications", applicationHandler.ListJobApplications) // Owner view
		}
	}
}

package routes

import (
	"talentbridge/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the session-side application routes.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.GET("/my", applicationHandler.ListMyApplications)
		applications.GET("/:id", applicationHandler.GetApplicationByID)
		applications.PATCH("/:id", applicationHandler.UpdateApplication)
		applications.PATCH("/:id/withdraw", applicationHandler.WithdrawApplication)
		applications.POST("/batch", applicationHandler.BatchTransition)
	}
}

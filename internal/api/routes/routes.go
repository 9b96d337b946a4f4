package routes

import (
	"log"

	"talentbridge/internal/api/handlers"
	"talentbridge/internal/api/middleware"
	"talentbridge/internal/app"
	"talentbridge/internal/services"
	"talentbridge/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions. The session surface lives under /api/v1, the
// agent surface under /open.
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.EntClient)
	jobRepo := postgres.NewJobRepo(app.EntClient)
	applicationRepo := postgres.NewApplicationRepo(app.EntClient)
	resumeRepo := postgres.NewResumeRepo(app.EntClient)
	interviewRepo := postgres.NewInterviewRepo(app.EntClient)
	conversationRepo := postgres.NewConversationRepo(app.EntClient)

	// --- Services ---
	userService := services.NewUserService(userRepo, app.RedisClient, app.Config.JWT.Secret, app.Config.JWT.Expiration, app.Config.JWT.RefreshExpiration)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	resumeService := services.NewResumeService(resumeRepo)
	interviewService := services.NewInterviewService(interviewRepo)
	conversationService := services.NewConversationService(conversationRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	resumeHandler := handlers.NewResumeHandler(resumeService, app.Validator)
	interviewHandler := handlers.NewInterviewHandler(interviewService, app.Validator)
	conversationHandler := handlers.NewConversationHandler(conversationService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)
	apiKeyMiddleware := middleware.APIKeyMiddleware(app.Config.OpenAPI.Key)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, applicationHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterOpenRoutes(router, resumeHandler, interviewHandler, conversationHandler, applicationHandler, apiKeyMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

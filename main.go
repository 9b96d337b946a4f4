// main.go

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"talentbridge/config"
	"talentbridge/internal/app"
	"talentbridge/internal/database"
	"talentbridge/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           TalentBridge API
// @version         1.0
// @description     Job and application lifecycle service with a session surface for users and an API-key surface for the conversational agent.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared static key for the /open surface.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// An unset open key means every /open call is rejected. Refuse to boot
	// that way in release mode; in dev it is a loud warning.
	if cfg.OpenAPI.Key == "" {
		if gin.Mode() == gin.ReleaseMode {
			log.Fatal("OPEN_API_KEY is required in release mode")
		}
		log.Println("WARN: OPEN_API_KEY is not set, all /open requests will be rejected")
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	entClient, err := database.NewEntClient(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer entClient.Close()

	// Run schema migration on startup.
	if err := entClient.Schema.Create(context.Background()); err != nil {
		log.Fatalf("Failed to run schema migration: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		EntClient:   entClient,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}

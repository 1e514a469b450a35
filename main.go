package main

import (
	"context"
	"log"

	api "vidstream-backend/cmd/api"
	userdomain "vidstream-backend/internal/user/domain"
	userRepo "vidstream-backend/internal/user/repository"
	userUsecase "vidstream-backend/internal/user/usecase"
	"vidstream-backend/pkg/config"
	"vidstream-backend/pkg/database"
	"vidstream-backend/pkg/imagehost"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&userdomain.User{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize image host
	uploader, err := imagehost.New(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to initialize image host:", err)
	}

	// Initialize repositories and use cases (dependency injection)
	repo := userRepo.NewUserRepository(db)
	userUsecaseInstance := userUsecase.NewUserUsecase(repo, uploader, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(userUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

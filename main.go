package main

import (
	api "gadgetverse-backend/cmd/api"
	authRepo "gadgetverse-backend/internal/auth/repository"
	authUsecase "gadgetverse-backend/internal/auth/usecase"
	productRepo "gadgetverse-backend/internal/product/repository"
	productUsecase "gadgetverse-backend/internal/product/usecase"
	"gadgetverse-backend/pkg/config"
	"gadgetverse-backend/pkg/database"
	"gadgetverse-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Env)

	// Initialize database; a connection failure is a startup failure,
	// handlers assume the collections are bound
	db, err := database.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("database", cfg.DBName).Msg("database connected")

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db.Users)
	productRepository := productRepo.NewProductRepository(db.Products)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository)
	productUsecaseInstance := productUsecase.NewProductUsecase(productRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, productUsecaseInstance, cfg, log)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

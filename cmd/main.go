package main

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/jobdeck/jobdeck/config"
	"github.com/jobdeck/jobdeck/internal/api/v1/handlers"
	"github.com/jobdeck/jobdeck/internal/api/v1/middleware"
	"github.com/jobdeck/jobdeck/internal/api/v1/routes"
	"github.com/jobdeck/jobdeck/internal/db"
	"github.com/jobdeck/jobdeck/internal/db/repos"
	"github.com/jobdeck/jobdeck/internal/logger"
	"github.com/jobdeck/jobdeck/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger.Initialize()

	sslEnabled := config.GetEnv("DB_SSL_MODE", "disable") != "disable"
	database, err := db.New(db.Options{
		Host:       config.GetEnv("DB_HOST", ""),
		User:       config.GetEnv("DB_USER", ""),
		Password:   config.GetEnv("DB_PASSWORD", ""),
		DBName:     config.GetEnv("DB_NAME", ""),
		Port:       config.GetEnvInt("DB_PORT", 0),
		SSLEnabled: &sslEnabled,
	})
	if err != nil {
		logger.Fatalf("Database connection error: %v", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Errorf("Failed to close database: %v", err)
		}
	}()

	jobRepo := repos.NewJobRepository(database)
	jobService := services.NewJobService(jobRepo, services.DefaultPolicy())
	jobHandler := handlers.NewJobHandler(jobService)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(middleware.Logger())
	routes.RegisterRoutes(app, jobHandler)

	port := config.GetEnv("PORT", routes.DefaultPort)
	logger.Infof("Server running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}

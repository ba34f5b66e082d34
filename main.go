package main

import (
	"os"
	"path/filepath"

	"souq/config"
	"souq/db"
	"souq/logger"
	"souq/routes"
	"souq/services"
	"souq/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	// Initialize database
	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalw("database init failed", "error", err)
	}

	// Create the upload areas if they don't exist
	for _, area := range []string{"categories", "products"} {
		if err := os.MkdirAll(filepath.Join(cfg.UploadsDir, area), 0755); err != nil {
			log.Fatalw("uploads dir init failed", "error", err)
		}
	}

	images := utils.NewImageManager(cfg.UploadsDir)
	categories := services.NewCategoryService(database, images, log)
	products := services.NewProductService(database, images, log)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Serve static files
	app.Static("/uploads", cfg.UploadsDir)

	// Setup routes
	routes.SetupRoutes(app, routes.NewHandlers(categories, products, cfg.BaseURL, log))

	log.Infow("starting server", "port", cfg.Port, "env", cfg.Env)
	log.Fatal(app.Listen(":" + cfg.Port))
}

package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"ecomm-api/internal/auth"
	"ecomm-api/internal/config"
	"ecomm-api/internal/db"
	"ecomm-api/internal/handlers"
	"ecomm-api/internal/middleware"
	"ecomm-api/internal/repository"
	"ecomm-api/internal/services"
	"ecomm-api/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg := config.Load()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	mongoDB := db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)

	var images storage.Storage
	switch cfg.StorageDriver {
	case "minio":
		minioStore, err := storage.NewMinio(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket)
		if err != nil {
			log.Fatalf("MinIO init failed: %v", err)
		}
		images = minioStore
	default:
		diskStore, err := storage.NewDisk(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Upload dir init failed: %v", err)
		}
		images = diskStore
		// Serve uploaded images
		app.Static("/uploads", cfg.UploadDir)
	}

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret))

	authService := &services.AuthService{
		Users:         repository.NewMongoUserStore(mongoDB),
		Tokens:        tokens,
		AdminName:     cfg.AdminName,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}
	catalogService := &services.CatalogService{
		Products: repository.NewMongoProductStore(mongoDB),
	}

	if err := authService.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Printf("Admin bootstrap failed: %v", err)
	}

	handlers.RegisterRoutes(
		app,
		&handlers.AuthHandler{Auth: authService},
		&handlers.ProductHandler{Catalog: catalogService, Images: images},
		middleware.NewAuth(tokens),
	)

	log.Fatal(app.Listen(":" + cfg.Port))
}

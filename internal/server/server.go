package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harshmehta/portfolio-api/internal/config"
	"github.com/harshmehta/portfolio-api/internal/domain"
	"github.com/harshmehta/portfolio-api/internal/handler"
	"github.com/harshmehta/portfolio-api/internal/middleware"
	"github.com/harshmehta/portfolio-api/internal/repository"
	"github.com/harshmehta/portfolio-api/internal/service"
	"github.com/harshmehta/portfolio-api/internal/telemetry"
)

// AppDependencies holds the dependencies required to start the application.
// ImageStore and ContactRepo may be pre-built (tests inject fakes here);
// when nil they are constructed from Config.
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	ImageStore  domain.ImageStore
	ContactRepo domain.ContactRepository
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	cfg := deps.Config

	// Blob store
	store := deps.ImageStore
	if store == nil {
		s3Store, err := repository.NewS3ImageStore(context.Background(), cfg.S3)
		if err != nil {
			log.Printf("Warning: failed to initialize S3 image store: %v", err)
		} else {
			store = s3Store
		}
	}

	// Contact storage
	contactRepo := deps.ContactRepo
	if contactRepo == nil && deps.MongoDB != nil {
		contactRepo = repository.NewMongoContactRepository(deps.MongoDB)
	}

	// Initialize services
	imageService := service.NewImageService(store, service.NewImagingOptimizer())
	contactService := service.NewContactService(contactRepo, &service.LogMailer{
		From:       cfg.Contact.From,
		Recipients: cfg.Contact.Recipients,
	})
	visitorCounter := repository.NewRedisVisitorCounter(deps.RedisClient)

	// Initialize handlers
	imageHandler := handler.NewImageHandler(imageService, cfg.Server.MaxUploadSizeMB)
	authHandler := handler.NewAuthHandler(cfg.Admin.Token, cfg.Admin.SessionSecret, cfg.IsProduction())
	contactHandler := handler.NewContactHandler(contactService)
	contentHandler := handler.NewContentHandler()
	visitorHandler := handler.NewVisitorHandler(visitorCounter)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Portfolio API",
		BodyLimit:    int(cfg.Server.MaxUploadSizeMB * 1024 * 1024),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: false,
	}))
	if cfg.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "portfolio-api",
		})
	})

	// Admin gate for mutating routes. Enforcement is the default; the
	// bypass is an explicit configuration choice and logs loudly.
	adminGate := middleware.RequireAdmin(
		middleware.AuthPolicy{RequireSession: !cfg.Admin.BypassAuth},
		cfg.Admin.SessionSecret,
	)

	// Admin session
	app.Post("/admin/login", authHandler.Login)
	app.Post("/admin/logout", authHandler.Logout)
	app.Get("/admin/contact", adminGate, contactHandler.Recent)

	// Image pipeline. Listing is public (the gallery reads it);
	// everything that mutates store state sits behind the admin gate.
	images := app.Group("/images")
	images.Get("/list", imageHandler.List)
	images.Get("/categories/summary", adminGate, imageHandler.CategorySummary)
	images.Post("/upload", adminGate, imageHandler.Upload)
	images.Post("/optimized-upload", adminGate, imageHandler.OptimizedUpload)
	images.Post("/delete", adminGate, imageHandler.Delete)

	// Contact form
	app.Post("/contact", contactHandler.Submit)

	// Static site content
	siteContent := app.Group("/content")
	siteContent.Get("/experiences", contentHandler.Experiences)
	siteContent.Get("/experiences/:slug", contentHandler.Experience)
	siteContent.Get("/skills", contentHandler.Skills)
	siteContent.Get("/categories", contentHandler.Categories)

	// Visitor counter
	app.Post("/visitors/hit", visitorHandler.Hit)
	app.Get("/visitors", visitorHandler.Count)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

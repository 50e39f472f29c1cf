package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"parshjain/portfolio-assistant/internal/config"
	"parshjain/portfolio-assistant/internal/handlers"
	"parshjain/portfolio-assistant/internal/repositories"
	"parshjain/portfolio-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load the profile once; everything downstream reads it by reference.
	profileService, err := services.NewProfileService(cfg.Profile.DataPath)
	if err != nil {
		log.Fatalf("❌ Failed to load profile data: %v", err)
	}
	log.Printf("✅ Profile loaded for %s\n", profileService.Record().PersonalInfo.Name)

	// Rate-limit store: shared Postgres when configured, process memory otherwise.
	var rateLimitStore repositories.RateLimitStore
	if cfg.Database.Enabled() {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		rateLimitStore = repositories.NewGormRateLimitStore(db)
		log.Println("✅ Using shared Postgres rate-limit store")
	} else {
		rateLimitStore = repositories.NewMemoryRateLimitStore()
		log.Println("✅ Using in-memory rate-limit store")
	}

	rateLimiter := services.NewRateLimiterService(rateLimitStore, cfg.RateLimit)

	// Initialize Gemini AI; disabled without a usable credential.
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	if geminiService.Enabled() {
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  Gemini AI disabled (no API key) - all answers come from the knowledge base")
	}

	fallbackService := services.NewFallbackService()

	// Optional resume context for the model prompt.
	var resumeText string
	if cfg.Profile.ResumePath != "" {
		resumeService := services.NewResumeService()
		resumeText, err = resumeService.ExtractText(cfg.Profile.ResumePath)
		if err != nil {
			log.Printf("⚠️  Failed to extract resume text: %v\n", err)
			resumeText = ""
		} else {
			log.Println("✅ Resume context loaded")
		}
	}

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(
		profileService,
		rateLimiter,
		geminiService,
		fallbackService,
		resumeText,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Portfolio Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api")
	api.Get("/chat", chatHandler.HandleHealth)
	api.Post("/chat", chatHandler.HandleChat)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Portfolio Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/chat",
				"POST /api/chat",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

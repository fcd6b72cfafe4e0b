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
	"github.com/gofiber/fiber/v2/middleware/session"

	"alfredoptarigan/ats-scorer/internal/config"
	"alfredoptarigan/ats-scorer/internal/handlers"
	"alfredoptarigan/ats-scorer/internal/services"
	"alfredoptarigan/ats-scorer/internal/views"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize the completion provider
	provider, err := services.NewChatProvider(services.ProviderOptions{
		Name:    cfg.Completion.Provider,
		APIKey:  cfg.APIKey(),
		Model:   cfg.Model(),
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize completion provider: %v", err)
	}
	log.Printf("✅ Completion provider initialized: %s", provider.Name())

	// Initialize services
	completionService := services.NewCompletionService(provider, services.NewLogNotifier())
	analyzerService := services.NewAnalyzerService(completionService, cfg.Completion.Timeout)
	extractor := services.NewTextExtractor(cfg.Storage.MaxFileSize)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	sessions := handlers.NewSessionSlot(session.New(session.Config{
		Expiration: cfg.Session.Expiration,
	}))
	uploadHandler := handlers.NewUploadHandler(extractor)
	routes := handlers.Handlers{
		Page:     handlers.NewPageHandler(analyzerService, uploadHandler, sessions),
		Download: handlers.NewDownloadHandler(sessions),
		Upload:   uploadHandler,
		API:      handlers.NewAPIHandler(analyzerService, provider.Name()),
	}
	log.Println("✅ Handlers initialized")

	// Create Fiber app. Writes wait for the completion call.
	app := fiber.New(fiber.Config{
		AppName:      "ATS Score Calculator",
		Views:        views.NewEngine(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Completion.Timeout + 30*time.Second,
		BodyLimit:    2*int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use("/api", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	handlers.Register(app, routes)

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
	log.Printf("📊 ATS Score Calculator: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

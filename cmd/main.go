package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seo-forge/internal/auth"
	"seo-forge/internal/database"
	"seo-forge/internal/generator"
	"seo-forge/internal/handlers"
	"seo-forge/internal/metadata"
	"seo-forge/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	dbConfig := database.LoadConfig()
	db, err := database.Connect(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	setupGracefulShutdown(db)
	setupServer(db)
}

func setupGracefulShutdown(db *gorm.DB) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received shutdown signal, gracefully shutting down...")
		database.Close(db)
		log.Println("Shutdown complete")
		os.Exit(0)
	}()
}

func setupServer(db *gorm.DB) {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Core services
	articlesService := services.NewArticlesService(db, generator.New())
	usersService := services.NewUsersService(db)
	tokenService := auth.NewTokenService(tokenSecret(), 24*time.Hour)

	// Handlers
	articlesHandler := handlers.NewArticlesHandler(articlesService)
	authHandler := handlers.NewAuthHandler(usersService, tokenService)
	extractHandler := handlers.NewExtractHandler(metadata.NewExtractor())
	exportHandler := handlers.NewExportHandler(articlesService)
	streamHandler := handlers.NewGenerateStreamHandler(articlesService)

	// Health check
	r.GET("/health", articlesHandler.HealthCheck)

	// API routes; authentication is optional, attach-if-present
	api := r.Group("/api", tokenService.Middleware())
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/profile", authHandler.Profile)
		}

		api.POST("/extract", extractHandler.FromURL)
		api.POST("/extract/text", extractHandler.FromText)

		articles := api.Group("/articles")
		{
			articles.POST("/generate", articlesHandler.Generate)
			articles.POST("/score", articlesHandler.Score)
			articles.GET("", articlesHandler.List)
			articles.GET("/:id", articlesHandler.Get)
			articles.PUT("/:id", articlesHandler.Update)
			articles.DELETE("/:id", articlesHandler.Delete)
			articles.GET("/:id/export", exportHandler.Export)
		}

		api.GET("/ws/generate", streamHandler.Stream)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func tokenSecret() string {
	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Println("AUTH_SECRET not set, using insecure development secret")
	}
	return secret
}

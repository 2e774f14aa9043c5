package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"jobconnect/internal/config"
	"jobconnect/internal/handler"
	"jobconnect/internal/middleware"
	"jobconnect/internal/repository"
	"jobconnect/internal/service"
	"jobconnect/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatalf("SESSION_SECRET not set in environment")
	}
	sessionTTLHoursStr := os.Getenv("SESSION_TTL_HOURS")
	sessionTTLHours, err := strconv.ParseInt(sessionTTLHoursStr, 10, 64)
	if err != nil {
		log.Printf("Invalid SESSION_TTL_HOURS, defaulting to 24: %v", err)
		sessionTTLHours = 24
	}
	sessionTTL := time.Duration(sessionTTLHours) * time.Hour

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads" // Default uploads directory
	}
	// Ensure uploads directory exists
	if err := os.MkdirAll(uploadsDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create uploads directory %s: %v", uploadsDir, err)
	}
	log.Printf("Uploads will be stored in: %s", uploadsDir)

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	tokenUtil := utils.NewTokenUtil(sessionSecret)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	jobRepo := repository.NewJobRepository(dbPool)
	sessionRepo := repository.NewSessionRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, sessionRepo, tokenUtil, sessionTTL)
	jobService := service.NewJobService(jobRepo, userRepo)
	userService := service.NewUserService(userRepo, uploadsDir)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, tokenUtil, int(sessionTTL.Seconds()))
	jobHandler := handler.NewJobHandler(jobService)
	userHandler := handler.NewUserHandler(userService)
	pageHandler := handler.NewPageHandler()

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	// For production, configure specific origins, methods, headers
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	sessionAuthMW := middleware.SessionAuthMiddleware(tokenUtil, sessionRepo)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)
	jobHandler.RegisterJobRoutes(apiGroup, sessionAuthMW)
	userHandler.RegisterUserRoutes(apiGroup, sessionAuthMW)

	// Uploaded resumes are served back under /uploads/<filename>
	router.Static("/uploads", uploadsDir)

	// --- HTML Pages ---
	router.LoadHTMLGlob("web/templates/*")
	pageHandler.RegisterPageRoutes(router)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		// Check DB connection
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vidhub-backend/config"
	"vidhub-backend/controllers"
	"vidhub-backend/data_access"
	"vidhub-backend/middleware"
	"vidhub-backend/services"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func setupLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := setupLogger(cfg)
	logger.Info().Str("env", cfg.Env).Msg("configuration loaded")

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongodb.Close(context.Background())

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongodb.EnsureIndexes(indexCtx); err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}
	cancel()

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	videoRepo := data_access.NewVideoRepository(mongodb)
	pexelsClient := data_access.NewPexelsClient(cfg.PexelsAPIKey, cfg.PexelsBaseURL)

	// Set JWT secret for middleware
	middleware.SetJWTSecret(cfg.JWTSecret)
	controllers.SetDebugMode(cfg.IsDevelopment())

	// Initialize services
	mailer := services.NewLogMailer(logger)
	authService := services.NewAuthService(userRepo, mailer, cfg.JWTSecret, time.Duration(cfg.ResetTokenTTLMin)*time.Minute)
	userService := services.NewUserService(userRepo)
	videoService := services.NewVideoService(videoRepo, pexelsClient)
	engagementService := services.NewEngagementService(userRepo, videoRepo, cfg.MaxCommentLength)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	videoController := controllers.NewVideoController(videoService)
	engagementController := controllers.NewEngagementController(engagementService)

	// Setup Gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(setupCORS())

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/register", authController.Register)
		api.POST("/login", authController.Login)
		api.POST("/logout", authController.Logout)
		api.POST("/forgot-password", authController.ForgotPassword)
		api.POST("/reset-password", authController.ResetPassword)

		api.GET("/videos", videoController.ListVideos)
		api.GET("/videos/:videoId", videoController.GetVideo)
		api.GET("/videos/:videoId/comments", engagementController.ListComments)
		api.GET("/videos/:videoId/rating/stats", engagementController.RatingStats)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", userController.GetProfile)
			protected.PUT("/profile", userController.UpdateProfile)
			protected.PUT("/profile/password", userController.ChangePassword)
			protected.DELETE("/profile", userController.DeleteOwnAccount)

			protected.GET("/favorites", userController.ListFavorites)
			protected.POST("/favorites", userController.AddFavorite)
			protected.DELETE("/favorites", userController.RemoveFavorite)

			protected.POST("/videos/:videoId/like", engagementController.ToggleLike)
			protected.POST("/videos/:videoId/rating", engagementController.RateVideo)
			protected.GET("/videos/:videoId/rating", engagementController.GetOwnRating)
			protected.DELETE("/videos/:videoId/rating", engagementController.DeleteRating)
			protected.POST("/videos/:videoId/comments", engagementController.AddComment)
			protected.PUT("/videos/:videoId/comments/:commentId", engagementController.EditComment)
			protected.DELETE("/videos/:videoId/comments/:commentId", engagementController.DeleteComment)

			// Administrator routes
			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				admin.DELETE("/users/:userId", userController.DeleteUser)
				admin.POST("/videos/ingest", videoController.Ingest)
			}
		}
	}

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

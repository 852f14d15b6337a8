package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rtawsif/linkup/backend/internal/handlers"
	"github.com/rtawsif/linkup/backend/internal/middleware"
	"github.com/rtawsif/linkup/backend/internal/models"
	"github.com/rtawsif/linkup/backend/internal/repositories"
	"github.com/rtawsif/linkup/backend/internal/services"
	"github.com/rtawsif/linkup/backend/pkg/config"
	"github.com/rtawsif/linkup/backend/pkg/logger"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	log := logger.Get()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	); err != nil {
		return err
	}
	log.Info("database migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// --- Services ---
	notificationService := services.NewNotificationService(notificationRepo, userRepo, postRepo, commentRepo)
	followService := services.NewFollowService(followRepo, userRepo, notificationService)
	postService := services.NewPostService(postRepo, userRepo, likeRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, notificationService)
	likeService := services.NewLikeService(likeRepo, postRepo, notificationService)
	feedService := services.NewFeedService(postRepo, followRepo, userRepo, likeRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo, followService)
	userHandler.RegisterProfileRoutes(api)

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentService)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeService)
	likeHandler.RegisterLikeRoutes(api)

	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Info("all routes configured")
	return nil
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/devconnector/devconnector-api/docs"
	"github.com/devconnector/devconnector-api/internal/api/handler"
	"github.com/devconnector/devconnector-api/internal/api/middleware"
	"github.com/devconnector/devconnector-api/internal/core/service"
	"github.com/devconnector/devconnector-api/internal/infrastructure/config"
	mongodb "github.com/devconnector/devconnector-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devconnector/devconnector-api/internal/infrastructure/db/redis"
	"github.com/devconnector/devconnector-api/internal/infrastructure/github"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Dependencies flow top-down: repositories over the store handles, services
// over the repositories, handlers over the services.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("devconnector"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	githubCache := redisdb.NewCache(rdb, "github_repos", cfg.Github.CacheTTL)
	githubClient := github.NewClient(cfg.Github.Token, githubCache, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	profileService := service.NewProfileService(profileRepo, userRepo, githubClient, log)
	postService := service.NewPostService(postRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Identity routes ---
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/auth", authHandler.Login)
	e.GET("/api/auth", authHandler.Current, authRequired)

	// --- Profile routes ---
	profile := e.Group("/api/profile")
	profile.GET("", profileHandler.List)
	profile.GET("/user/:user_id", profileHandler.GetByUserID)
	profile.GET("/github/:username", profileHandler.GithubRepos)
	profile.GET("/me", profileHandler.Me, authRequired)
	profile.POST("", profileHandler.Upsert, authRequired)
	profile.DELETE("", profileHandler.DeleteAccount, authRequired)
	profile.PUT("/experience", profileHandler.AddExperience, authRequired)
	profile.DELETE("/experience/:exp_id", profileHandler.RemoveExperience, authRequired)
	profile.PUT("/education", profileHandler.AddEducation, authRequired)
	profile.DELETE("/education/:edu_id", profileHandler.RemoveEducation, authRequired)

	// --- Post routes ---
	posts := e.Group("/api/posts", authRequired)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.DELETE("/:id", postHandler.Delete)
	posts.PUT("/like/:id", postHandler.Like)
	posts.PUT("/unlike/:id", postHandler.Unlike)
	posts.POST("/comment/:id", postHandler.AddComment)
	posts.DELETE("/comment/:id/:comment_id", postHandler.RemoveComment)

	// --- Ops endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

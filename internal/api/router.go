package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roastify/roast-api/internal/api/handler"
	"github.com/roastify/roast-api/internal/api/middleware"
	"github.com/roastify/roast-api/internal/core/ports"
	"github.com/roastify/roast-api/internal/core/service"
	mongoinfra "github.com/roastify/roast-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/roastify/roast-api/internal/infrastructure/db/redis"
	"github.com/roastify/roast-api/internal/infrastructure/generation"
	"github.com/roastify/roast-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the service then runs without the generation cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("roastify"))
	e.Use(middleware.Guard())

	// --- Dependencies ---
	userRepo := mongoinfra.NewUserRepository(db)
	roastRepo := mongoinfra.NewRoastRepository(db)
	photoRepo := mongoinfra.NewPhotoRepository(db)

	userService := service.NewUserService(userRepo)
	tokenService := service.NewTokenService(cfg.JWTSecret)
	roastService := service.NewRoastService(roastRepo, userRepo, log)
	photoService := service.NewPhotoService(photoRepo)

	var upstream ports.Generator
	if generation.Enabled(cfg.HuggingFace.APIKey) {
		upstream = generation.NewHuggingFaceClient(cfg.HuggingFace.URL, cfg.HuggingFace.APIKey)
	}
	var cache ports.GenerationCache
	if rdb != nil {
		cache = redisinfra.NewGenerationCache(rdb, log)
	}
	generatorService := service.NewGeneratorService(upstream, cache, log)

	secureCookie := cfg.IsProduction()
	authHandler := handler.NewAuthHandler(userService, tokenService, secureCookie)
	userHandler := handler.NewUserHandler(userService, secureCookie)
	roastHandler := handler.NewRoastHandler(generatorService, roastService)
	photoHandler := handler.NewPhotoHandler(photoService)
	authRequired := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)
	e.POST("/auth/signout", authHandler.Signout)
	e.GET("/auth/me", authHandler.Me, authRequired)
	e.PUT("/auth/me", userHandler.UpdateProfile, authRequired)
	e.PUT("/auth/me/password", userHandler.UpdatePassword, authRequired)
	e.DELETE("/auth/me", userHandler.DeleteAccount, authRequired)

	// --- Roast routes ---
	e.POST("/roast/generate", roastHandler.Generate, authRequired)
	e.POST("/roasts", roastHandler.Save, authRequired)
	e.GET("/roasts", roastHandler.List, authRequired)
	e.POST("/roasts/:id/reaction", roastHandler.React, authRequired)
	e.PUT("/roasts/:id/rating", roastHandler.Rate, authRequired)
	e.DELETE("/roasts/:id", roastHandler.Delete, authRequired)

	// --- Photo routes (reads are public, mutations need a session) ---
	e.POST("/photos/:userId/:name", photoHandler.Add, authRequired)
	e.GET("/photos/:userId/:name", photoHandler.Get)
	e.DELETE("/photos/:userId/:name", photoHandler.Delete, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"agrimatch/docs"
	"agrimatch/internal/auth"
	"agrimatch/internal/cache"
	"agrimatch/internal/config"
	"agrimatch/internal/db"
	"agrimatch/internal/handler"
	"agrimatch/internal/model"
	"agrimatch/internal/repository"
	"agrimatch/internal/router"
	"agrimatch/internal/sample"
	"agrimatch/internal/service"
)

// @title Agrimatch API
// @version 1.0
// @description Farmland matching marketplace API with listing search, favorites, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Favorite{},
			&model.Farmland{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Farmland{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	farmlandRepo := repository.NewFarmlandRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	farmlandService := service.NewFarmlandService(farmlandRepo, userRepo, sample.New())
	favoriteService := service.NewFavoriteService(favoriteRepo, farmlandRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	farmlandHandler := handler.NewFarmlandHandler(farmlandService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	seedHandler := handler.NewSeedHandler(farmlandService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		farmlandHandler,
		favoriteHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

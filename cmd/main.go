package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/slangstash/slang-service/config"
	"github.com/slangstash/slang-service/db"
	adminhandler "github.com/slangstash/slang-service/internal/admin/handler"
	"github.com/slangstash/slang-service/internal/cache"
	"github.com/slangstash/slang-service/internal/mail"
	"github.com/slangstash/slang-service/internal/middleware"
	slanghandler "github.com/slangstash/slang-service/internal/slang/handler"
	slangrepo "github.com/slangstash/slang-service/internal/slang/repository/postgres"
	slangservice "github.com/slangstash/slang-service/internal/slang/service"
	"github.com/slangstash/slang-service/internal/token"
	userhandler "github.com/slangstash/slang-service/internal/user/handler"
	userrepo "github.com/slangstash/slang-service/internal/user/repository/postgres"
	userservice "github.com/slangstash/slang-service/internal/user/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer dbPool.Close()

	store, err := cache.NewRedisCache(ctx, cfg.RedisURI)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer store.Close()

	tokenService := token.NewTokenService(cfg.JWTSecret, cfg.SessionExpiryHours, cfg.EmailExpiryHours)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPAccount, cfg.SMTPPassword,
		cfg.AppBaseURL, cfg.FrontendBaseURL)

	slangService := slangservice.NewSlangService(slangrepo.NewPostgresSlangRepository(dbPool), store)
	userService := userservice.NewUserService(userrepo.NewPostgresUserRepository(dbPool), tokenService, mailer)

	slangHandler := slanghandler.NewSlangHandler(slangService)
	userHandler := userhandler.NewUserHandler(userService, tokenService)
	adminHandler := adminhandler.NewAdminHandler(store)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	authenticate := middleware.Authenticate(tokenService)
	slanghandler.RegisterRoutes(app, slangHandler, store, authenticate)
	userhandler.RegisterRoutes(app, userHandler, store, authenticate)
	adminhandler.RegisterRoutes(app, adminHandler, authenticate)

	log.Fatal(app.Listen(":" + cfg.Port))
}

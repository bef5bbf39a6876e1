package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gameshelf-dev/gameshelf/db"
	"github.com/gameshelf-dev/gameshelf/internal/auth"
	"github.com/gameshelf-dev/gameshelf/internal/config"
	"github.com/gameshelf-dev/gameshelf/internal/router"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine outside development.
	_ = godotenv.Load()

	if err := config.InitConfig(); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	var logger *zap.Logger
	var err error

	switch config.AppConfig.LogLevel {
	case "debug":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}

	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	expiry := time.Duration(config.AppConfig.TokenExpireMinutes) * time.Minute

	if err := auth.InitJWT(config.AppConfig.JWTSecret, expiry); err != nil {
		logger.Fatal("Failed to initialize JWT", zap.Error(err))
	}

	if err := db.ConnectDatabase(config.AppConfig.DatabaseURL); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	r := router.NewRouter()

	addr := fmt.Sprintf(":%d", config.AppConfig.Port)
	logger.Info("Starting server", zap.String("addr", addr))

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/spanteq/console/internal/api"
	"github.com/spanteq/console/internal/cli"
	"github.com/spanteq/console/internal/config"
	"github.com/spanteq/console/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg.Log)

	if len(os.Args) > 1 && os.Args[1] == "create-admin" {
		runCreateAdmin(cfg, logger)
		return
	}

	database, err := db.OpenSQLite(cfg.DB.Path, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}

	tokenTTL, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		logger.Warn().Str("token_ttl", cfg.Auth.TokenTTL).Msg("invalid token TTL, using 168h")
		tokenTTL = 168 * time.Hour
	}

	if count, err := db.NewUserRepository(database).CountUsers(); err == nil && count == 0 {
		logger.Warn().Msg("no users exist yet, run the create-admin command to bootstrap one")
	}

	handler := api.NewHandler(database, cfg.Auth.SecretKey, tokenTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:               "SpanTeq Console",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(api.RequestLogger(logger))
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("db", cfg.DB.Path).
		Msg("spanteq console listening")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func runCreateAdmin(cfg config.Config, logger zerolog.Logger) {
	flags := flag.NewFlagSet("create-admin", flag.ExitOnError)
	email := flags.String("email", "", "email address of the admin account")
	if err := flags.Parse(os.Args[2:]); err != nil {
		logger.Fatal().Err(err).Msg("parse create-admin flags")
	}

	if err := cli.RunCreateAdminCommand(cfg.DB.Path, *email); err != nil {
		fmt.Fprintf(os.Stderr, "create-admin failed: %v\n", err)
		os.Exit(1)
	}
}

func buildLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// @title Business Feed API
// @version 1.0
// @description Posting, quota and ranking engine for the public business directory.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "bizfeed/docs"

	"bizfeed/config"
	"bizfeed/internal/app"
	"bizfeed/internal/routes"
)

func main() {
	cfg, envLoaded := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := app.Open(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("startup failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := rt.Log
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rt.Close(cctx); err != nil {
			log.Error().Err(err).Msg("close runtime")
		}
	}()

	if !envLoaded {
		log.Warn().Msg(".env file not found, using system environment variables")
	}
	if cfg.JWTSecret == "" {
		log.Error().Msg("JWT_SECRET is required")
		return
	}

	if cfg.SeedDemo {
		if _, err := rt.Seed(ctx); err != nil {
			log.Error().Err(err).Msg("seed demo posts")
			return
		}
	}

	server := routes.NewApp(routes.AppOptions{
		Engine:      rt.Engine,
		JWTSecret:   cfg.JWTSecret,
		IsModerator: cfg.IsModerator,
		Log:         log,
	})

	go func() {
		<-ctx.Done()
		if err := server.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("listening")
	if err := server.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

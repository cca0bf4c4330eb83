// Package main is the entry point for the Jokes API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"jokesapi/src/app/server"
	"jokesapi/src/infra/config"
	"jokesapi/src/infra/db"
	"jokesapi/src/infra/logger"
	"jokesapi/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	jokeRepo := repo.NewPostgresJokeRepository(pg, log)

	srv := server.New(cfg, log, jokeRepo)

	// Run blocks until a shutdown signal is received.
	return srv.Run()
}

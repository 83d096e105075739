package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/party-feedback/cliparse"
	"github.com/danielhkuo/party-feedback/db"
	"github.com/danielhkuo/party-feedback/logging"
	"github.com/danielhkuo/party-feedback/router"
	"github.com/danielhkuo/party-feedback/store"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	logging.Init("party-feedback", cfg.Env)

	// Connect to the database
	dbConn, err := store.Open(context.Background(), cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("database", cfg.RedactedDatabaseURL()).
			Msg("database connection failed")
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		log.Fatal().Err(err).Msg("schema creation failed")
	}
	log.Info().
		Str("type", cfg.DatabaseType).
		Str("database", cfg.RedactedDatabaseURL()).
		Msg("database schema ready")

	st, err := store.New(dbConn, cfg.DatabaseType)
	if err != nil {
		log.Fatal().Err(err).Msg("store setup failed")
	}

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(st, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	log.Info().Int("port", cfg.Port).Msg("listening")
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server closed")
	} else {
		log.Info().Msg("server closed")
	}
}

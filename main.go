package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"plantstore_server/api"
	"plantstore_server/config"
	"plantstore_server/database"
	"plantstore_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found, using system environment variables")
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to connect to the plant store database",
			gecho.Field("error", err),
			gecho.Field("database", cfg.Database.Name),
		)
	}
}

func main() {
	setupGracefulShutdown(logger)

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	logger.Info("Plant store listening",
		gecho.Field("app", cfg.Server.AppName),
		gecho.Field("addr", cfg.Server.Port),
		gecho.Field("environment", cfg.Server.Environment),
	)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server stopped", gecho.Field("error", err))
	}
}

// setupGracefulShutdown releases the database pool on SIGINT/SIGTERM before
// the process exits.
func setupGracefulShutdown(logger *gecho.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-c
		logger.Info("Shutting down", gecho.Field("signal", sig.String()))
		if err := database.CloseInstance(); err != nil {
			logger.Error("Failed to close database", gecho.Field("error", err))
		}
		os.Exit(0)
	}()
}

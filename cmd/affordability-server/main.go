package main

import (
	"flag"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/config"
	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/server"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/affordability"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/validation"
)

// version is stamped at build time via -ldflags.
var version = "development"

func main() {
	configLocation := flag.String("config", "", "path to server configuration file")
	address := flag.String("addr", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration\", \"error\": \"%v\"}\n", err)
		return
	}

	logger, err := config.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	engineConfig := cfg.EngineConfig()
	warnings, err := validation.ValidateEngineConfig(engineConfig)
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
	if err != nil {
		logger.Fatal("invalid finance configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	engine := affordability.NewEngine(engineConfig, logger)
	handler := server.NewHandler(engine, logger, cfg.MaxBodyBytes(), version)

	listenAddress := cfg.Address
	if *address != "" {
		listenAddress = *address
	}

	logger.Info("starting affordability server",
		zap.String("op", "main"),
		zap.String("address", listenAddress),
		zap.String("version", version),
	)
	if err := http.ListenAndServe(listenAddress, handler); err != nil {
		logger.Fatal("server exited",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/config"
	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/note"
	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/scraper"
	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/vault"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/affordability"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/validation"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	listingURL := flag.String("url", "", "Property24 listing URL to scrape")
	vaultDir := flag.String("vault", "", "vault directory override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	dryRun := flag.Bool("dry-run", false, "print the generated note instead of saving it")
	flag.Parse()

	// A .env file may carry the vault directory; missing files are fine.
	_ = godotenv.Load()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *listingURL == "" {
		logger.Fatal("no listing URL provided, use -url",
			zap.String("op", "main"),
		)
	}

	// Validate the engine configuration and display any warnings
	engineConfig := conf.EngineConfig()
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

	// Scrape the listing.
	s := scraper.New(logger, scraper.WithUserAgent(conf.UserAgent()))
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(conf.ScrapeTimeoutSeconds())*time.Second)
	defer cancel()
	listing, err := s.Scrape(ctx, *listingURL)
	if err != nil {
		logger.Fatal("failed to scrape listing",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Render the note.
	generator := note.NewGenerator(engine, logger)
	n, err := generator.Generate(listing)
	if err != nil {
		logger.Fatal("failed to generate note",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if *dryRun {
		fmt.Println(n.Content)
		return
	}

	// Save into the vault.
	dir, err := conf.VaultDirectory(*vaultDir)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	store, err := vault.NewStore(dir, conf.Vault.Subfolder, logger)
	if err != nil {
		logger.Fatal("failed to open vault",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	path, err := store.Save(n)
	if err != nil {
		logger.Fatal("failed to save note",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	fmt.Printf("Saved %s\n", path)
}

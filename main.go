// main.go
package main

import (
	"log"
	"os"

	"movie-reservation/cmd"
	"movie-reservation/internal/data/catalog"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/wire"
	"movie-reservation/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// A catalog path on the command line overrides CATALOG_PATH
	if len(os.Args) > 1 {
		config.Catalog.Path = os.Args[1]
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("catalog", config.Catalog.Path),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize in-memory stores
	repos := repository.NewRepository(logger)

	// Seed inventory from the catalog file
	loader := catalog.NewLoader(repos, config.Catalog.Delimiter, logger)
	result, err := loader.Load(config.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	logger.Info("Inventory ready",
		zap.Int("showtimes", result.Loaded),
		zap.Int("skipped", result.Skipped),
	)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, os.Stdout)

	// Run the interactive menu
	cmd.RunMenu(app.Handler, os.Stdin, os.Stdout)
}

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/config"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/stats"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	refresh := flag.Bool("refresh", false, "reload every source even if a cache exists")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	logger, err := config.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	slog.SetDefault(logger)

	selectors, err := cfg.Selectors()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	db, found, err := stats.LoadIfExists(cfg.Database)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	if !found || *refresh {
		db = stats.NewDatabase(selectors.Locations()...)
		if err := db.DownloadSources(); err != nil {
			config.Exitf("Error: %v", err)
		}
		if err := db.Save(cfg.Database); err != nil {
			config.Exitf("Error: save %s: %v", cfg.Database, err)
		}
		logger.Info("Saved source cache", "database", cfg.Database, "sources", len(db.Sources))
	}

	db.Info(os.Stdout)
}

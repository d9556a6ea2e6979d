package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/config"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/report"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/stats"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	subjectName := flag.String("subject", string(zone.Interest), "subject to rank zones by")
	grade := flag.Int("grade", 0, "grade for elementary subjects (3-5)")
	pngPath := flag.String("png", "", "write a stacked bar chart to this PNG file")
	xlsxPath := flag.String("xlsx", "", "write the summary and its chart to this workbook")
	verbose := flag.Bool("v", false, "dump the zone summary")
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
	subject, err := zone.ParseSubject(*subjectName)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	db, found, err := stats.LoadIfExists(cfg.Database)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	if !found {
		logger.Info("No source cache found, reading sources directly", "database", cfg.Database)
		db = stats.NewDatabase()
	}

	agg := zone.NewAggregator(db, selectors, logger)
	summary, err := report.Rankings(agg, subject, *grade, logger)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	if *verbose {
		spew.Dump(summary)
	}

	report.PrintRankings(os.Stdout, summary)

	if *pngPath != "" {
		if err := report.SavePNG(*pngPath, summary); err != nil {
			config.Exitf("Error: %v", err)
		}
		logger.Info("Saved chart", "path", *pngPath)
	}
	if *xlsxPath != "" {
		if err := report.SaveWorkbook(*xlsxPath, summary); err != nil {
			config.Exitf("Error: %v", err)
		}
		logger.Info("Saved workbook", "path", *xlsxPath)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/bootstrap"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/config"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/report"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/stats"
	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	subjectName := flag.String("subject", string(zone.Interest), "subject to compare zones by")
	grade := flag.Int("grade", 0, "grade for elementary subjects (3-5)")
	zones := flag.String("zones", "", "pair of zones to compare, e.g. 3,9")
	all := flag.Bool("all", false, "compare every pair of zones and write the comparison table")
	outDir := flag.String("out", ".", "output directory for the comparison table")
	trials := flag.Int("trials", 0, "bootstrap trials (0 = configured trial count)")
	seed := flag.Int64("seed", 0, "random seed for reproducibility (0 = configured seed)")
	verbose := flag.Bool("v", false, "dump comparison details")
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

	if *trials > 0 {
		cfg.TrialCount = *trials
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

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
	est := bootstrap.NewEstimator(
		bootstrap.WithTrials(cfg.TrialCount),
		bootstrap.WithSeed(cfg.Seed),
		bootstrap.WithLogger(logger),
	)
	driver := report.NewDriver(agg, est, report.Options{
		Threshold: cfg.SignificanceThreshold,
		Workers:   cfg.Workers,
		Logger:    logger,
	})

	if *all {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sweep, err := runSweep(ctx, driver, subject, *grade, *outDir)
		if err != nil {
			config.Exitf("Error: %v", err)
		}
		if *verbose {
			spew.Dump(sweep.Failures)
		}
		return
	}

	zoneA, zoneB, err := parseZones(*zones)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	c, err := driver.Compare(subject, zoneA, zoneB, *grade)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	if *verbose {
		spew.Dump(c)
	}

	report.PrintComparison(os.Stdout, c, driver.Threshold())
}

// runSweep compares every pair of zones, prints the summary and writes the
// table of pairs with no significant difference into outDir.
func runSweep(ctx context.Context, driver *report.Driver, subject zone.Subject, grade int, outDir string) (*report.Sweep, error) {
	sweep, err := driver.CompareAll(ctx, subject, grade)
	if err != nil {
		return nil, err
	}

	report.PrintSweep(os.Stdout, sweep)

	path := filepath.Join(outDir, report.ComparisonFileName(subject, sweep.Grade))
	if err := report.SaveComparisons(path, sweep.NotSignificant()); err != nil {
		return nil, err
	}
	return sweep, nil
}

func parseZones(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-zones wants two zones like 3,9, got %q", s)
	}

	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("-zones: %w", err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("-zones: %w", err)
	}
	return a, b, nil
}

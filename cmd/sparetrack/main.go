package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/weldcell/sparetrack/pkg/infrastructure/config"
	"github.com/weldcell/sparetrack/pkg/infrastructure/logger"
	"github.com/weldcell/sparetrack/pkg/interfaces/cli/commands"
)

func main() {
	cfg := config.Load()

	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			cfg.DataDir,
			"Path to scenario directory containing CSV files",
		)
		partsFile      = flag.String("parts", "", "Path to parts CSV file")
		assetsFile     = flag.String("assets", "", "Path to assets CSV file")
		reordersFile   = flag.String("reorders", "", "Path to reorders CSV file")
		partTypesFile  = flag.String("part-types", "", "Path to part types catalog CSV file")
		robotMakesFile = flag.String("robot-makes", "", "Path to robot makes catalog CSV file")
		outputDir      = flag.String("output", "", "Output directory for results (optional)")
		format         = flag.String("format", "text", "Output format: text, json")
		window         = flag.Int("window", cfg.RecentCostWindowDays, "Recent reorder cost window in days")
		verbose        = flag.Bool("verbose", false, "Enable verbose output")
		help           = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cmdConfig := commands.Config{
		ScenarioDir:      *scenarioDir,
		PartsFile:        *partsFile,
		AssetsFile:       *assetsFile,
		ReordersFile:     *reordersFile,
		PartTypesFile:    *partTypesFile,
		RobotMakesFile:   *robotMakesFile,
		OutputDir:        *outputDir,
		Format:           *format,
		Verbose:          *verbose,
		RecentWindowDays: *window,
		Help:             *help,
	}

	cmd := commands.NewReportCommand(cmdConfig, log)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

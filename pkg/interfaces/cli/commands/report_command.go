package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/weldcell/sparetrack/pkg/application/services"
	"github.com/weldcell/sparetrack/pkg/infrastructure/repositories/csv"
	"github.com/weldcell/sparetrack/pkg/infrastructure/repositories/memory"
	"github.com/weldcell/sparetrack/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command
type Config struct {
	ScenarioDir      string
	PartsFile        string
	AssetsFile       string
	ReordersFile     string
	PartTypesFile    string
	RobotMakesFile   string
	OutputDir        string
	Format           string
	Verbose          bool
	RecentWindowDays int
	Help             bool
}

// ReportCommand loads a scenario and renders the inventory status report
type ReportCommand struct {
	config Config
	logger *zap.Logger
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config, logger *zap.Logger) *ReportCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportCommand{
		config: config,
		logger: logger,
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	files, err := c.resolveInputFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve input files: %w", err)
	}

	loader := csv.NewLoader()

	catalog, err := loader.LoadCatalog(files["PartTypes"], files["RobotMakes"])
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	parts, err := loader.LoadParts(files["Parts"])
	if err != nil {
		return fmt.Errorf("error loading parts: %w", err)
	}
	for _, part := range parts {
		if err := catalog.ValidatePartType(part.PartType); err != nil {
			return fmt.Errorf("part %s: %w", part.PartNumber, err)
		}
	}

	assets, err := loader.LoadAssets(files["Assets"])
	if err != nil {
		return fmt.Errorf("error loading assets: %w", err)
	}

	reorders, err := loader.LoadReorders(files["Reorders"])
	if err != nil {
		return fmt.Errorf("error loading reorders: %w", err)
	}

	// Stock status is derived, never trusted from the files.
	csv.ApplyStockStatus(parts, reorders)

	if c.config.Verbose {
		fmt.Printf("Data loaded successfully:\n")
		fmt.Printf("  Parts: %d\n", len(parts))
		fmt.Printf("  Assets: %d\n", len(assets))
		fmt.Printf("  Reorders: %d\n", len(reorders))
		fmt.Printf("  Catalogued part types: %d\n", catalog.PartTypeCount())
		fmt.Println()
	}

	partRepo := memory.NewPartRepository(len(parts))
	if err := partRepo.LoadParts(parts); err != nil {
		return fmt.Errorf("failed to load parts into repository: %w", err)
	}
	assetRepo := memory.NewAssetRepository(len(assets))
	if err := assetRepo.LoadAssets(assets); err != nil {
		return fmt.Errorf("failed to load assets into repository: %w", err)
	}
	reorderRepo := memory.NewReorderRepository(len(reorders))
	if err := reorderRepo.LoadReorders(reorders); err != nil {
		return fmt.Errorf("failed to load reorders into repository: %w", err)
	}

	dashboard := services.NewDashboardService(partRepo, reorderRepo, assetRepo, c.config.RecentWindowDays, c.logger)
	stats, err := dashboard.Summarize(time.Now())
	if err != nil {
		return fmt.Errorf("failed to summarize inventory: %w", err)
	}

	sortedParts, err := partRepo.GetAllParts()
	if err != nil {
		return err
	}
	sortedReorders, err := reorderRepo.GetAllReorders()
	if err != nil {
		return err
	}

	return output.Generate(&output.Report{
		Stats:    stats,
		Parts:    sortedParts,
		Reorders: sortedReorders,
	}, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

// resolveInputFiles determines the CSV file for each collection, preferring
// explicit flags over the scenario directory convention
func (c *ReportCommand) resolveInputFiles() (map[string]string, error) {
	files := map[string]string{
		"Parts":      c.config.PartsFile,
		"Assets":     c.config.AssetsFile,
		"Reorders":   c.config.ReordersFile,
		"PartTypes":  c.config.PartTypesFile,
		"RobotMakes": c.config.RobotMakesFile,
	}

	defaults := map[string]string{
		"Parts":      "parts.csv",
		"Assets":     "assets.csv",
		"Reorders":   "reorders.csv",
		"PartTypes":  "part_types.csv",
		"RobotMakes": "robot_makes.csv",
	}

	for name, path := range files {
		if path != "" {
			continue
		}
		if c.config.ScenarioDir == "" {
			return nil, fmt.Errorf("no %s file specified and no scenario directory given", name)
		}
		files[name] = filepath.Join(c.config.ScenarioDir, defaults[name])
	}

	return files, nil
}

func (c *ReportCommand) showHelp() {
	fmt.Println("sparetrack - spare parts inventory and reorder tracking")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sparetrack -scenario <dir> [flags]")
	fmt.Println()
	fmt.Println("The scenario directory must contain parts.csv, assets.csv,")
	fmt.Println("reorders.csv, part_types.csv, and robot_makes.csv. Individual")
	fmt.Println("file flags override the directory convention.")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -scenario      Path to scenario directory containing CSV files")
	fmt.Println("  -parts         Path to parts CSV file")
	fmt.Println("  -assets        Path to assets CSV file")
	fmt.Println("  -reorders      Path to reorders CSV file")
	fmt.Println("  -part-types    Path to part types catalog CSV file")
	fmt.Println("  -robot-makes   Path to robot makes catalog CSV file")
	fmt.Println("  -output        Output directory for results (optional)")
	fmt.Println("  -format        Output format: text, json")
	fmt.Println("  -window        Recent reorder cost window in days")
	fmt.Println("  -verbose       Enable verbose output")
	fmt.Println("  -help          Show this help message")
}

package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
)

// Config holds configuration for report output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Report is the renderable inventory report: the dashboard snapshot plus the
// collections it was derived from.
type Report struct {
	Stats    *entities.DashboardStats `json:"stats"`
	Parts    []*entities.SparePart    `json:"parts"`
	Reorders []*entities.Reorder      `json:"reorders"`
}

// Generate renders the report in the configured format
func Generate(report *Report, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *Report, config Config) error {
	fmt.Printf("Inventory Status Report\n")
	fmt.Printf("=======================\n\n")

	fmt.Printf("Assets: %d (%d in maintenance)\n", report.Stats.TotalAssets, report.Stats.AssetsInMaintenance)
	fmt.Printf("Spare Parts: %d (%d low or out of stock)\n", report.Stats.TotalSparePartsCount, report.Stats.LowStockItems)
	fmt.Printf("Pending Reorders: %d\n", report.Stats.PendingReorders)
	fmt.Printf("Recent Reorder Cost: %s\n\n", report.Stats.RecentReorderCost.StringFixed(2))

	if len(report.Parts) > 0 {
		fmt.Printf("Spare Parts:\n")
		fmt.Printf("%-15s %-24s %-14s %-8s %-8s %-12s\n",
			"Part Number", "Name", "Type", "Stock", "Reorder", "Status")
		fmt.Printf("%-15s %-24s %-14s %-8s %-8s %-12s\n",
			"---------------", "------------------------", "--------------", "--------", "--------", "------------")

		for _, part := range report.Parts {
			fmt.Printf("%-15s %-24s %-14s %-8d %-8d %-12s\n",
				part.PartNumber,
				part.Name,
				part.PartType,
				part.StockQuantity,
				part.ReorderPoint,
				part.Status)
		}
		fmt.Println()
	}

	if len(report.Reorders) > 0 {
		fmt.Printf("Reorders:\n")
		fmt.Printf("%-15s %-8s %-12s %-12s %-14s %-12s\n",
			"Part Number", "Qty", "Total", "Status", "Requested", "Expected")
		fmt.Printf("%-15s %-8s %-12s %-12s %-14s %-12s\n",
			"---------------", "--------", "------------", "------------", "--------------", "------------")

		for _, reorder := range report.Reorders {
			expected := "-"
			if reorder.ExpectedDelivery != nil {
				expected = reorder.ExpectedDelivery.Format("2006-01-02")
			}
			fmt.Printf("%-15s %-8d %-12s %-12s %-14s %-12s\n",
				reorder.PartNumber,
				reorder.Quantity,
				reorder.TotalPrice.StringFixed(2),
				reorder.Status,
				reorder.DateRequested.Format("2006-01-02"),
				expected)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *Report, config Config) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "inventory_report.json")
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if config.Verbose {
			fmt.Printf("Report saved to: %s\n", filename)
		}
		return nil
	}

	fmt.Println(string(data))
	return nil
}

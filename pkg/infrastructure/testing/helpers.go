package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	"github.com/weldcell/sparetrack/pkg/infrastructure/repositories/memory"
)

// BuildWeldShopTestData builds the weld shop scenario used across the service
// tests: three robot assets, three parts at different stock levels, and no
// reorders yet.
func BuildWeldShopTestData() (*memory.PartRepository, *memory.ReorderRepository, *memory.AssetRepository, *memory.SupportRepository) {
	partRepo := memory.NewPartRepository(3)
	reorderRepo := memory.NewReorderRepository(8)
	assetRepo := memory.NewAssetRepository(3)
	supportRepo := memory.NewSupportRepository()

	parts := []*entities.SparePart{
		{
			ID:              "part-cap-tip",
			Name:            "Cap Tip 13R",
			PartNumber:      "CT-13R-40",
			PartType:        "cap-tip",
			RobotMake:       "FANUC",
			Manufacturer:    "Obara",
			Supplier:        "WeldSupply Co",
			UnitPrice:       decimal.RequireFromString("4.50"),
			StockQuantity:   120,
			MinStockLevel:   40,
			ReorderPoint:    50,
			ReorderQuantity: 200,
			Location:        "Rack A1",
			LeadTimeDays:    7,
			Status:          entities.InStock,
		},
		{
			ID:              "part-shank",
			Name:            "Fixed Shank",
			PartNumber:      "SHK-F-201",
			PartType:        "shank-fixed",
			RobotMake:       "ABB",
			Manufacturer:    "Obara",
			Supplier:        "WeldSupply Co",
			UnitPrice:       decimal.RequireFromString("38.00"),
			StockQuantity:   4,
			MinStockLevel:   2,
			ReorderPoint:    5,
			ReorderQuantity: 10,
			Location:        "Rack B2",
			LeadTimeDays:    21,
			Status:          entities.LowStock,
		},
		{
			ID:              "part-transformer",
			Name:            "Weld Transformer",
			PartNumber:      "TRF-90K",
			PartType:        "transformer",
			RobotMake:       "KUKA",
			Manufacturer:    "ARO",
			Supplier:        "Industrial Electric",
			UnitPrice:       decimal.RequireFromString("1250.00"),
			StockQuantity:   0,
			MinStockLevel:   1,
			ReorderPoint:    1,
			ReorderQuantity: 2,
			Location:        "Cage C1",
			LeadTimeDays:    0,
			Status:          entities.OutOfStock,
		},
	}
	if err := partRepo.LoadParts(parts); err != nil {
		panic(err)
	}

	baseDate := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	assets := []*entities.Asset{
		{
			ID:              "asset-r01",
			Name:            "Spot Welder R01",
			Model:           "R-2000iC",
			Manufacturer:    "FANUC",
			SerialNumber:    "R01-9981",
			Location:        "Line 1",
			RobotMake:       "FANUC",
			Status:          entities.Operational,
			InstallDate:     baseDate,
			LastMaintenance: baseDate.AddDate(0, 2, 0),
			NextMaintenance: baseDate.AddDate(0, 8, 0),
		},
		{
			ID:              "asset-r02",
			Name:            "Spot Welder R02",
			Model:           "IRB 6700",
			Manufacturer:    "ABB",
			SerialNumber:    "R02-4410",
			Location:        "Line 1",
			RobotMake:       "ABB",
			Status:          entities.Maintenance,
			InstallDate:     baseDate,
			LastMaintenance: baseDate.AddDate(0, 3, 0),
			NextMaintenance: baseDate.AddDate(0, 9, 0),
		},
		{
			ID:              "asset-r03",
			Name:            "Spot Welder R03",
			Model:           "KR 210",
			Manufacturer:    "KUKA",
			SerialNumber:    "R03-1205",
			Location:        "Line 2",
			RobotMake:       "KUKA",
			Status:          entities.Repair,
			InstallDate:     baseDate,
			LastMaintenance: baseDate.AddDate(0, 1, 0),
			NextMaintenance: baseDate.AddDate(0, 7, 0),
		},
	}
	if err := assetRepo.LoadAssets(assets); err != nil {
		panic(err)
	}

	return partRepo, reorderRepo, assetRepo, supportRepo
}

// BuildTestCatalog returns a small catalog covering the fixture part types.
func BuildTestCatalog() *entities.Catalog {
	return entities.NewCatalog(
		[]entities.PartType{"cap-tip", "tip-base", "shank-fixed", "shank-moving", "transformer", "gun-body-assy"},
		[]string{"FANUC", "ABB", "KUKA", "Yaskawa"},
	)
}

// Command example walks one spare part through the full reorder lifecycle:
// request, approval against a purchase order, placement, transit, and
// delivery, with the derived stock status shown at each step.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/weldcell/sparetrack/pkg/application/services"
	"github.com/weldcell/sparetrack/pkg/domain/entities"
	rules "github.com/weldcell/sparetrack/pkg/domain/services"
	"github.com/weldcell/sparetrack/pkg/infrastructure/repositories/memory"
)

func main() {
	partRepo := memory.NewPartRepository(1)
	reorderRepo := memory.NewReorderRepository(1)
	assetRepo := memory.NewAssetRepository(1)

	part, err := entities.NewSparePart(
		"part-cap-tip",
		"Cap Tip 13R",
		"CT-13R-40",
		"cap-tip",
		decimal.RequireFromString("4.50"),
		12,  // stock quantity, below the reorder point
		40,  // min stock level
		50,  // reorder point
		200, // reorder quantity
		7,   // lead time days
	)
	if err != nil {
		log.Fatal(err)
	}
	part.RobotMake = "FANUC"
	part.Supplier = "WeldSupply Co"
	if err := partRepo.SavePart(part); err != nil {
		log.Fatal(err)
	}

	asset := &entities.Asset{
		ID:        "asset-r01",
		Name:      "Spot Welder R01",
		RobotMake: "FANUC",
		Status:    entities.Operational,
	}
	if err := assetRepo.LoadAssets([]*entities.Asset{asset}); err != nil {
		log.Fatal(err)
	}

	machine := rules.NewReorderMachine(rules.DefaultFallbackLeadTimeDays)
	service := services.NewReorderService(partRepo, reorderRepo, machine, nil, nil, nil)

	fmt.Println("=== Reorder Lifecycle Walkthrough ===")
	printStatus(service, part.ID, "initial")

	// Raise a reorder with a quote valid for two weeks.
	validUntil := time.Now().AddDate(0, 0, 14)
	reorder, err := service.CreateReorder(part.ID, 0, &services.QuoteDetails{
		Price:      decimal.RequireFromString("4.20"),
		ValidUntil: validUntil,
	}, "monthly cap tip replenishment")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("created reorder %s for %d units, total %s\n",
		reorder.ID, reorder.Quantity, reorder.TotalPrice.StringFixed(2))
	printStatus(service, part.ID, "after create")

	// Approval requires a purchase order number.
	if _, err := service.Approve(reorder.ID, "", true, true); err != nil {
		fmt.Printf("approval without PO rejected: %v\n", err)
	}

	if _, err := service.Approve(reorder.ID, "PO-2025-0042", true, true); err != nil {
		log.Fatal(err)
	}
	fmt.Println("approved against PO-2025-0042")

	placed, err := service.PlaceOrder(reorder.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("order placed, expected delivery %s\n",
		placed.ExpectedDelivery.Format("2006-01-02"))

	if _, err := service.MarkInTransit(reorder.ID); err != nil {
		log.Fatal(err)
	}
	fmt.Println("shipment in transit")

	delivered, err := service.Receive(reorder.ID, "INV-7781", "GRN-0093")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("delivered on %s, payment status %s\n",
		delivered.DateDelivered.Format("2006-01-02"), delivered.Payment)
	printStatus(service, part.ID, "after delivery")

	dashboard := services.NewDashboardService(partRepo, reorderRepo, assetRepo, 0, nil)
	stats, err := dashboard.Summarize(time.Now())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\ndashboard: %d assets, %d parts, %d low stock, %d pending reorders, recent cost %s\n",
		stats.TotalAssets, stats.TotalSparePartsCount, stats.LowStockItems,
		stats.PendingReorders, stats.RecentReorderCost.StringFixed(2))
}

func printStatus(service *services.ReorderService, partID entities.PartID, label string) {
	status, err := service.ClassifyPart(partID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("stock status (%s): %s\n", label, status)
}

package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	"github.com/weldcell/sparetrack/pkg/domain/services"
)

func testParts() []*entities.SparePart {
	return []*entities.SparePart{
		{
			ID:            "part-b",
			Name:          "Tip Base",
			PartNumber:    "TB-200",
			PartType:      "tip-base",
			UnitPrice:     decimal.RequireFromString("6.75"),
			StockQuantity: 80,
			ReorderPoint:  30,
		},
		{
			ID:            "part-a",
			Name:          "Cap Tip",
			PartNumber:    "CT-100",
			PartType:      "cap-tip",
			UnitPrice:     decimal.RequireFromString("4.50"),
			StockQuantity: 120,
			ReorderPoint:  50,
		},
	}
}

func TestPartRepositoryGetReturnsCopy(t *testing.T) {
	repo := NewPartRepository(2)
	if err := repo.LoadParts(testParts()); err != nil {
		t.Fatalf("LoadParts failed: %v", err)
	}

	part, err := repo.GetPart("part-a")
	if err != nil {
		t.Fatalf("GetPart failed: %v", err)
	}

	// Mutating the returned copy must not leak into the store.
	part.StockQuantity = 0
	stored, err := repo.GetPart("part-a")
	if err != nil {
		t.Fatalf("GetPart failed: %v", err)
	}
	if stored.StockQuantity != 120 {
		t.Errorf("store mutated through returned copy: StockQuantity = %d", stored.StockQuantity)
	}
}

func TestPartRepositoryGetUnknown(t *testing.T) {
	repo := NewPartRepository(0)

	_, err := repo.GetPart("part-nope")
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestPartRepositoryGetAllSortedByPartNumber(t *testing.T) {
	repo := NewPartRepository(2)
	if err := repo.LoadParts(testParts()); err != nil {
		t.Fatalf("LoadParts failed: %v", err)
	}

	parts, err := repo.GetAllParts()
	if err != nil {
		t.Fatalf("GetAllParts failed: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	if parts[0].PartNumber != "CT-100" || parts[1].PartNumber != "TB-200" {
		t.Errorf("parts not sorted by part number: %s, %s", parts[0].PartNumber, parts[1].PartNumber)
	}
}

func TestPartRepositoryLoadRejectsDuplicates(t *testing.T) {
	repo := NewPartRepository(2)
	parts := testParts()
	parts = append(parts, &entities.SparePart{ID: "part-a", PartNumber: "CT-100"})

	err := repo.LoadParts(parts)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), "part-a") {
		t.Errorf("error should name the duplicate id, got: %v", err)
	}
}

func TestPartRepositorySaveOverwrites(t *testing.T) {
	repo := NewPartRepository(1)
	part := testParts()[0]
	if err := repo.SavePart(part); err != nil {
		t.Fatalf("SavePart failed: %v", err)
	}

	part.StockQuantity = 55
	if err := repo.SavePart(part); err != nil {
		t.Fatalf("SavePart failed: %v", err)
	}

	stored, err := repo.GetPart(part.ID)
	if err != nil {
		t.Fatalf("GetPart failed: %v", err)
	}
	if stored.StockQuantity != 55 {
		t.Errorf("StockQuantity = %d, want 55", stored.StockQuantity)
	}

	if err := repo.SavePart(nil); err == nil {
		t.Error("expected error for nil part")
	}
}

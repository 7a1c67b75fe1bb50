package services

import (
	"testing"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
)

func TestClassifyStockPrecedence(t *testing.T) {
	tests := []struct {
		name           string
		stockQuantity  entities.Quantity
		reorderPoint   entities.Quantity
		hasOpenReorder bool
		want           entities.StockStatus
	}{
		{"open reorder wins over out of stock", 0, 5, true, entities.OnOrder},
		{"open reorder wins over low stock", 3, 5, true, entities.OnOrder},
		{"open reorder wins over healthy stock", 100, 5, true, entities.OnOrder},
		{"zero quantity is out of stock", 0, 5, false, entities.OutOfStock},
		{"zero quantity with zero reorder point", 0, 0, false, entities.OutOfStock},
		{"at reorder point is low stock", 5, 5, false, entities.LowStock},
		{"below reorder point is low stock", 4, 5, false, entities.LowStock},
		{"above reorder point is in stock", 6, 5, false, entities.InStock},
		{"positive quantity with zero reorder point is in stock", 1, 0, false, entities.InStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStock(tt.stockQuantity, tt.reorderPoint, tt.hasOpenReorder)
			if got != tt.want {
				t.Errorf("ClassifyStock(%d, %d, %v) = %v, want %v",
					tt.stockQuantity, tt.reorderPoint, tt.hasOpenReorder, got, tt.want)
			}
		})
	}
}

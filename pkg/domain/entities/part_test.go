package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSparePartValidation(t *testing.T) {
	price := decimal.RequireFromString("4.50")

	tests := []struct {
		name    string
		build   func() (*SparePart, error)
		wantErr bool
	}{
		{
			"valid part",
			func() (*SparePart, error) {
				return NewSparePart("p1", "Cap Tip", "CT-100", "cap-tip", price, 10, 5, 8, 50, 7)
			},
			false,
		},
		{
			"empty id",
			func() (*SparePart, error) {
				return NewSparePart("", "Cap Tip", "CT-100", "cap-tip", price, 10, 5, 8, 50, 7)
			},
			true,
		},
		{
			"empty part number",
			func() (*SparePart, error) {
				return NewSparePart("p1", "Cap Tip", "", "cap-tip", price, 10, 5, 8, 50, 7)
			},
			true,
		},
		{
			"negative unit price",
			func() (*SparePart, error) {
				return NewSparePart("p1", "Cap Tip", "CT-100", "cap-tip", decimal.RequireFromString("-1"), 10, 5, 8, 50, 7)
			},
			true,
		},
		{
			"negative stock",
			func() (*SparePart, error) {
				return NewSparePart("p1", "Cap Tip", "CT-100", "cap-tip", price, -1, 5, 8, 50, 7)
			},
			true,
		},
		{
			"negative reorder point",
			func() (*SparePart, error) {
				return NewSparePart("p1", "Cap Tip", "CT-100", "cap-tip", price, 10, 5, -1, 50, 7)
			},
			true,
		},
		{
			"negative lead time",
			func() (*SparePart, error) {
				return NewSparePart("p1", "Cap Tip", "CT-100", "cap-tip", price, 10, 5, 8, 50, -7)
			},
			true,
		},
		{
			"zero price is allowed",
			func() (*SparePart, error) {
				return NewSparePart("p1", "Washer", "W-1", "seal-kit", decimal.Zero, 10, 5, 8, 50, 7)
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSparePartClassifiesFromQuantities(t *testing.T) {
	price := decimal.RequireFromString("4.50")

	tests := []struct {
		name          string
		stockQuantity Quantity
		reorderPoint  Quantity
		want          StockStatus
	}{
		{"zero stock is out of stock", 0, 5, OutOfStock},
		{"at reorder point is low stock", 5, 5, LowStock},
		{"above reorder point is in stock", 6, 5, InStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part, err := NewSparePart("p1", "Cap Tip", "CT-100", "cap-tip", price,
				tt.stockQuantity, 2, tt.reorderPoint, 50, 7)
			if err != nil {
				t.Fatalf("NewSparePart failed: %v", err)
			}
			if part.Status != tt.want {
				t.Errorf("Status = %v, want %v", part.Status, tt.want)
			}
		})
	}
}

func TestStockStatusRoundTrip(t *testing.T) {
	for _, status := range []StockStatus{InStock, LowStock, OutOfStock, OnOrder} {
		parsed, err := ParseStockStatus(status.String())
		if err != nil {
			t.Fatalf("ParseStockStatus(%q) failed: %v", status.String(), err)
		}
		if parsed != status {
			t.Errorf("round trip of %v produced %v", status, parsed)
		}
	}

	if _, err := ParseStockStatus("backordered"); err == nil {
		t.Error("expected error for unknown stock status")
	}
}

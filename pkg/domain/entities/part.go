package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PartID uniquely identifies a spare part
type PartID string

// PartType tags a part with its catalog category (e.g. cap-tip, shank-fixed)
type PartType string

// Quantity represents an integer quantity value for discrete stock units
type Quantity int64

// StockStatus is the derived stock classification of a spare part
type StockStatus int

const (
	InStock StockStatus = iota
	LowStock
	OutOfStock
	OnOrder
)

// String method for StockStatus enum
func (s StockStatus) String() string {
	switch s {
	case InStock:
		return "in-stock"
	case LowStock:
		return "low-stock"
	case OutOfStock:
		return "out-of-stock"
	case OnOrder:
		return "on-order"
	default:
		return "unknown"
	}
}

// ParseStockStatus parses the string form used in fixture files
func ParseStockStatus(s string) (StockStatus, error) {
	switch s {
	case "in-stock":
		return InStock, nil
	case "low-stock":
		return LowStock, nil
	case "out-of-stock":
		return OutOfStock, nil
	case "on-order":
		return OnOrder, nil
	default:
		return InStock, fmt.Errorf("unknown stock status %q", s)
	}
}

// SparePart represents a stocked item. Status is always derived from the
// quantities and the part's open reorders; it is never authoritative input.
type SparePart struct {
	ID              PartID
	Name            string
	PartNumber      string
	Description     string
	PartType        PartType
	RobotMake       string
	Manufacturer    string
	Supplier        string
	UnitPrice       decimal.Decimal
	StockQuantity   Quantity
	MinStockLevel   Quantity
	ReorderPoint    Quantity
	ReorderQuantity Quantity
	Location        string
	LeadTimeDays    int
	LastOrdered     *time.Time
	LastRestocked   *time.Time
	Status          StockStatus
	Notes           string
}

// NewSparePart creates a validated SparePart. The status field starts as
// OutOfStock/LowStock/InStock purely from quantities; callers that know the
// part's open-reorder set reclassify afterwards.
func NewSparePart(
	id PartID,
	name, partNumber string,
	partType PartType,
	unitPrice decimal.Decimal,
	stockQuantity, minStockLevel, reorderPoint, reorderQuantity Quantity,
	leadTimeDays int,
) (*SparePart, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("part id cannot be empty")
	}
	if partNumber == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", unitPrice)
	}
	if stockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity cannot be negative, got %d", stockQuantity)
	}
	if minStockLevel < 0 || reorderPoint < 0 || reorderQuantity < 0 {
		return nil, fmt.Errorf("stock thresholds cannot be negative")
	}
	if leadTimeDays < 0 {
		return nil, fmt.Errorf("lead time cannot be negative, got %d days", leadTimeDays)
	}

	status := InStock
	switch {
	case stockQuantity == 0:
		status = OutOfStock
	case stockQuantity <= reorderPoint:
		status = LowStock
	}

	return &SparePart{
		ID:              id,
		Name:            name,
		PartNumber:      partNumber,
		PartType:        partType,
		UnitPrice:       unitPrice,
		StockQuantity:   stockQuantity,
		MinStockLevel:   minStockLevel,
		ReorderPoint:    reorderPoint,
		ReorderQuantity: reorderQuantity,
		LeadTimeDays:    leadTimeDays,
		Status:          status,
	}, nil
}

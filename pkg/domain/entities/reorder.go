package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReorderID uniquely identifies a reorder
type ReorderID string

// ReorderStatus is the state-machine governed status of a reorder
type ReorderStatus int

const (
	Pending ReorderStatus = iota
	Approved
	Ordered
	InTransit
	Delivered
	Cancelled
)

// String method for ReorderStatus enum
func (s ReorderStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Approved:
		return "approved"
	case Ordered:
		return "ordered"
	case InTransit:
		return "in-transit"
	case Delivered:
		return "delivered"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseReorderStatus parses the string form used in fixture files
func ParseReorderStatus(s string) (ReorderStatus, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "approved":
		return Approved, nil
	case "ordered":
		return Ordered, nil
	case "in-transit":
		return InTransit, nil
	case "delivered":
		return Delivered, nil
	case "cancelled":
		return Cancelled, nil
	default:
		return Pending, fmt.Errorf("unknown reorder status %q", s)
	}
}

// PaymentStatus tracks supplier payment against a reorder
type PaymentStatus int

const (
	Unpaid PaymentStatus = iota
	Invoiced
	Paid
)

// String method for PaymentStatus enum
func (p PaymentStatus) String() string {
	switch p {
	case Unpaid:
		return "unpaid"
	case Invoiced:
		return "invoiced"
	case Paid:
		return "paid"
	default:
		return "unknown"
	}
}

// Reorder represents a single purchase request for one spare part. The part
// fields are a denormalized snapshot taken at request time.
type Reorder struct {
	ID         ReorderID
	PartID     PartID
	PartName   string
	PartNumber string
	PartType   PartType
	Supplier   string

	Quantity      Quantity
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	QuotedPrice   *decimal.Decimal
	QuoteValidity *time.Time

	Status ReorderStatus

	DateRequested    time.Time
	DateApproved     *time.Time
	DateOrdered      *time.Time
	ExpectedDelivery *time.Time
	DateDelivered    *time.Time

	PurchaseOrderNumber string
	InvoiceNumber       string
	GRNNumber           string
	Payment             PaymentStatus
	Notes               string
}

// NewReorder creates a validated Reorder in the pending state. TotalPrice is
// always computed here; it is never accepted from the caller.
func NewReorder(
	id ReorderID,
	part *SparePart,
	quantity Quantity,
	dateRequested time.Time,
) (*Reorder, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("reorder id cannot be empty")
	}
	if part == nil {
		return nil, fmt.Errorf("reorder must reference a part")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("reorder quantity must be positive, got %d", quantity)
	}

	return &Reorder{
		ID:            id,
		PartID:        part.ID,
		PartName:      part.Name,
		PartNumber:    part.PartNumber,
		PartType:      part.PartType,
		Supplier:      part.Supplier,
		Quantity:      quantity,
		UnitPrice:     part.UnitPrice,
		TotalPrice:    part.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Status:        Pending,
		DateRequested: dateRequested,
	}, nil
}

// IsOpen reports whether the reorder is still in flight (not delivered or
// cancelled). Open reorders take precedence in stock classification.
func (r *Reorder) IsOpen() bool {
	return r.Status != Delivered && r.Status != Cancelled
}

// CheckTotalPrice verifies the TotalPrice = Quantity x UnitPrice invariant.
// Loaders call this on every reorder read from external data.
func (r *Reorder) CheckTotalPrice() error {
	want := r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
	if !r.TotalPrice.Equal(want) {
		return fmt.Errorf("reorder %s: total price %s does not equal quantity %d x unit price %s (want %s)",
			r.ID, r.TotalPrice, r.Quantity, r.UnitPrice, want)
	}
	return nil
}

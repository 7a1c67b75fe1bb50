package events

import (
	"github.com/weldcell/sparetrack/pkg/domain/entities"
)

const (
	ReorderCreatedEvent   = "reorder.created"
	ReorderApprovedEvent  = "reorder.approved"
	ReorderRejectedEvent  = "reorder.rejected"
	ReorderPlacedEvent    = "reorder.placed"
	ReorderInTransitEvent = "reorder.in_transit"
	ReorderDeliveredEvent = "reorder.delivered"
	ReorderCancelledEvent = "reorder.cancelled"

	StockReplenishedEvent  = "stock.replenished"
	StockReclassifiedEvent = "stock.reclassified"

	SupportOpenedEvent   = "support.opened"
	SupportResolvedEvent = "support.resolved"
	SupportClosedEvent   = "support.closed"
)

type ReorderCreated struct {
	Reorder entities.Reorder `json:"reorder"`
}

type ReorderApproved struct {
	Reorder             entities.Reorder `json:"reorder"`
	PurchaseOrderNumber string           `json:"purchase_order_number"`
}

type ReorderRejected struct {
	Reorder entities.Reorder `json:"reorder"`
}

type ReorderPlaced struct {
	Reorder      entities.Reorder `json:"reorder"`
	LeadTimeDays int              `json:"lead_time_days"`
}

type ReorderDelivered struct {
	Reorder       entities.Reorder  `json:"reorder"`
	InvoiceNumber string            `json:"invoice_number,omitempty"`
	GRNNumber     string            `json:"grn_number,omitempty"`
	NewStockLevel entities.Quantity `json:"new_stock_level"`
}

type ReorderInTransit struct {
	Reorder entities.Reorder `json:"reorder"`
}

type ReorderCancelled struct {
	Reorder entities.Reorder `json:"reorder"`
}

type StockReplenished struct {
	PartID   entities.PartID   `json:"part_id"`
	Quantity entities.Quantity `json:"quantity"`
	NewLevel entities.Quantity `json:"new_level"`
}

type StockReclassified struct {
	PartID    entities.PartID      `json:"part_id"`
	OldStatus entities.StockStatus `json:"old_status"`
	NewStatus entities.StockStatus `json:"new_status"`
}

type SupportOpened struct {
	Request entities.SupportRequest `json:"request"`
}

type SupportResolved struct {
	Request entities.SupportRequest `json:"request"`
}

type SupportClosed struct {
	Request entities.SupportRequest `json:"request"`
}

func NewReorderCreatedEvent(reorder entities.Reorder) Event {
	return NewEvent(ReorderCreatedEvent, string(reorder.ID), ReorderCreated{Reorder: reorder})
}

func NewReorderApprovedEvent(reorder entities.Reorder) Event {
	return NewEvent(ReorderApprovedEvent, string(reorder.ID), ReorderApproved{
		Reorder:             reorder,
		PurchaseOrderNumber: reorder.PurchaseOrderNumber,
	})
}

func NewReorderRejectedEvent(reorder entities.Reorder) Event {
	return NewEvent(ReorderRejectedEvent, string(reorder.ID), ReorderRejected{Reorder: reorder})
}

func NewReorderPlacedEvent(reorder entities.Reorder, leadTimeDays int) Event {
	return NewEvent(ReorderPlacedEvent, string(reorder.ID), ReorderPlaced{
		Reorder:      reorder,
		LeadTimeDays: leadTimeDays,
	})
}

func NewReorderInTransitEvent(reorder entities.Reorder) Event {
	return NewEvent(ReorderInTransitEvent, string(reorder.ID), ReorderInTransit{Reorder: reorder})
}

func NewReorderDeliveredEvent(reorder entities.Reorder, newStockLevel entities.Quantity) Event {
	return NewEvent(ReorderDeliveredEvent, string(reorder.ID), ReorderDelivered{
		Reorder:       reorder,
		InvoiceNumber: reorder.InvoiceNumber,
		GRNNumber:     reorder.GRNNumber,
		NewStockLevel: newStockLevel,
	})
}

func NewReorderCancelledEvent(reorder entities.Reorder) Event {
	return NewEvent(ReorderCancelledEvent, string(reorder.ID), ReorderCancelled{Reorder: reorder})
}

func NewStockReplenishedEvent(partID entities.PartID, quantity, newLevel entities.Quantity) Event {
	return NewEvent(StockReplenishedEvent, string(partID), StockReplenished{
		PartID:   partID,
		Quantity: quantity,
		NewLevel: newLevel,
	})
}

func NewStockReclassifiedEvent(partID entities.PartID, oldStatus, newStatus entities.StockStatus) Event {
	return NewEvent(StockReclassifiedEvent, string(partID), StockReclassified{
		PartID:    partID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})
}

func NewSupportOpenedEvent(request entities.SupportRequest) Event {
	return NewEvent(SupportOpenedEvent, string(request.ID), SupportOpened{Request: request})
}

func NewSupportResolvedEvent(request entities.SupportRequest) Event {
	return NewEvent(SupportResolvedEvent, string(request.ID), SupportResolved{Request: request})
}

func NewSupportClosedEvent(request entities.SupportRequest) Event {
	return NewEvent(SupportClosedEvent, string(request.ID), SupportClosed{Request: request})
}

package services

import (
	"time"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
)

// Command names a reorder state-machine edge.
type Command int

const (
	CommandApprove Command = iota
	CommandReject
	CommandPlaceOrder
	CommandMarkInTransit
	CommandReceive
	CommandCancel
)

// String method for Command enum
func (c Command) String() string {
	switch c {
	case CommandApprove:
		return "approve"
	case CommandReject:
		return "reject"
	case CommandPlaceOrder:
		return "place-order"
	case CommandMarkInTransit:
		return "mark-in-transit"
	case CommandReceive:
		return "receive"
	case CommandCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// transitionTable maps command x source status to the resulting status.
// Delivered and Cancelled are terminal: no command appears for them.
var transitionTable = map[Command]map[entities.ReorderStatus]entities.ReorderStatus{
	CommandApprove: {
		entities.Pending: entities.Approved,
	},
	CommandReject: {
		entities.Pending: entities.Cancelled,
	},
	CommandPlaceOrder: {
		entities.Approved: entities.Ordered,
	},
	CommandMarkInTransit: {
		entities.Ordered: entities.InTransit,
	},
	CommandReceive: {
		entities.Ordered:   entities.Delivered,
		entities.InTransit: entities.Delivered,
	},
	CommandCancel: {
		entities.Approved: entities.Cancelled,
	},
}

// DefaultFallbackLeadTimeDays is the delivery window assumed when a part's
// lead time is unknown.
const DefaultFallbackLeadTimeDays = 30

// ReorderMachine validates and applies reorder state transitions. Each
// operation checks its guards first and mutates the reorder only after all of
// them pass, so a failed call leaves the entity untouched.
type ReorderMachine struct {
	fallbackLeadTimeDays int
}

// NewReorderMachine creates a machine with the given fallback delivery window
// in days. A non-positive value selects DefaultFallbackLeadTimeDays.
func NewReorderMachine(fallbackLeadTimeDays int) *ReorderMachine {
	if fallbackLeadTimeDays <= 0 {
		fallbackLeadTimeDays = DefaultFallbackLeadTimeDays
	}
	return &ReorderMachine{fallbackLeadTimeDays: fallbackLeadTimeDays}
}

// NextStatus resolves the transition table for a command against a source
// status. It fails with an invalid-transition RuleError when no edge exists,
// which covers both wrong source states and terminal states.
func (m *ReorderMachine) NextStatus(cmd Command, from entities.ReorderStatus) (entities.ReorderStatus, error) {
	next, ok := transitionTable[cmd][from]
	if !ok {
		return from, ruleErrorf(KindInvalidTransition,
			"cannot %s a reorder in status %s", cmd, from)
	}
	return next, nil
}

// Approve moves a pending reorder to approved. Guards run in a fixed order
// and the first failure wins: the purchase order number must be present, the
// approver must have reviewed the quote, and the quote must be valid.
func (m *ReorderMachine) Approve(
	r *entities.Reorder,
	purchaseOrderNumber string,
	quoteReviewed, quoteValid bool,
	now time.Time,
) error {
	next, err := m.NextStatus(CommandApprove, r.Status)
	if err != nil {
		return err
	}
	if purchaseOrderNumber == "" {
		return ruleErrorf(KindMissingPurchaseOrder,
			"reorder %s: a purchase order number is required before approval", r.ID)
	}
	if !quoteReviewed {
		return ruleErrorf(KindQuoteNotReviewed,
			"reorder %s: the price quote must be reviewed before approval", r.ID)
	}
	if !quoteValid {
		return ruleErrorf(KindInvalidQuote,
			"reorder %s: cannot approve against an expired or rejected quote", r.ID)
	}

	approvedAt := dateOnly(now)
	r.Status = next
	r.DateApproved = &approvedAt
	r.PurchaseOrderNumber = purchaseOrderNumber
	return nil
}

// Reject cancels a pending reorder. No further fields are set.
func (m *ReorderMachine) Reject(r *entities.Reorder) error {
	next, err := m.NextStatus(CommandReject, r.Status)
	if err != nil {
		return err
	}
	r.Status = next
	return nil
}

// PlaceOrder moves an approved reorder to ordered, stamping DateOrdered and
// computing ExpectedDelivery from the part's lead time. A non-positive lead
// time falls back to the machine's configured window.
func (m *ReorderMachine) PlaceOrder(r *entities.Reorder, leadTimeDays int, now time.Time) error {
	next, err := m.NextStatus(CommandPlaceOrder, r.Status)
	if err != nil {
		return err
	}
	if leadTimeDays <= 0 {
		leadTimeDays = m.fallbackLeadTimeDays
	}

	orderedAt := dateOnly(now)
	expected := orderedAt.AddDate(0, 0, leadTimeDays)
	r.Status = next
	r.DateOrdered = &orderedAt
	r.ExpectedDelivery = &expected
	return nil
}

// MarkInTransit records that an ordered reorder has shipped.
func (m *ReorderMachine) MarkInTransit(r *entities.Reorder) error {
	next, err := m.NextStatus(CommandMarkInTransit, r.Status)
	if err != nil {
		return err
	}
	r.Status = next
	return nil
}

// Receive completes delivery of an ordered or in-transit reorder, stamping
// DateDelivered and recording the invoice and GRN numbers when supplied.
// Adjusting the owning part's stock is the caller's responsibility.
func (m *ReorderMachine) Receive(r *entities.Reorder, invoiceNumber, grnNumber string, now time.Time) error {
	next, err := m.NextStatus(CommandReceive, r.Status)
	if err != nil {
		return err
	}

	deliveredAt := dateOnly(now)
	r.Status = next
	r.DateDelivered = &deliveredAt
	if invoiceNumber != "" {
		r.InvoiceNumber = invoiceNumber
		r.Payment = entities.Invoiced
	}
	if grnNumber != "" {
		r.GRNNumber = grnNumber
	}
	return nil
}

// Cancel cancels an approved reorder before it is placed.
func (m *ReorderMachine) Cancel(r *entities.Reorder) error {
	next, err := m.NextStatus(CommandCancel, r.Status)
	if err != nil {
		return err
	}
	r.Status = next
	return nil
}

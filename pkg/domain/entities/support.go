package entities

import (
	"fmt"
	"time"
)

// SupportRequestID uniquely identifies a support request
type SupportRequestID string

// SupportType categorizes a support request against a reorder
type SupportType int

const (
	Cancellation SupportType = iota
	Modification
	UrgentDelivery
	SupplierDelay
	WarrantyClaim
)

// String method for SupportType enum
func (t SupportType) String() string {
	switch t {
	case Cancellation:
		return "cancellation"
	case Modification:
		return "modification"
	case UrgentDelivery:
		return "urgent-delivery"
	case SupplierDelay:
		return "supplier-delay"
	case WarrantyClaim:
		return "warranty-claim"
	default:
		return "unknown"
	}
}

// ParseSupportType parses the string form used in fixture files
func ParseSupportType(s string) (SupportType, error) {
	switch s {
	case "cancellation":
		return Cancellation, nil
	case "modification":
		return Modification, nil
	case "urgent-delivery":
		return UrgentDelivery, nil
	case "supplier-delay":
		return SupplierDelay, nil
	case "warranty-claim":
		return WarrantyClaim, nil
	default:
		return Cancellation, fmt.Errorf("unknown support type %q", s)
	}
}

// SupportStatus tracks the lifecycle of a support request
type SupportStatus int

const (
	SupportOpen SupportStatus = iota
	SupportInProgress
	SupportResolved
	SupportClosed
)

// String method for SupportStatus enum
func (s SupportStatus) String() string {
	switch s {
	case SupportOpen:
		return "open"
	case SupportInProgress:
		return "in-progress"
	case SupportResolved:
		return "resolved"
	case SupportClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// SupportRequest is a side-channel ticket tied to one reorder. It back-
// references the order but never drives the order's own state.
type SupportRequest struct {
	ID            SupportRequestID
	OrderID       ReorderID
	Type          SupportType
	Notes         string
	Status        SupportStatus
	DateSubmitted time.Time
	DateResolved  *time.Time
	ResponseNotes string
}

// Terminal reports whether no further support transition is defined.
func (r *SupportRequest) Terminal() bool {
	return r.Status == SupportResolved || r.Status == SupportClosed
}

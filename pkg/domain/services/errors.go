package services

import "fmt"

// RuleKind identifies which business rule a RuleError reports. Every kind is
// locally recoverable: the caller gets the kind plus a reason and the entity
// is left unchanged.
type RuleKind int

const (
	KindMissingPurchaseOrder RuleKind = iota
	KindQuoteNotReviewed
	KindInvalidQuote
	KindInvalidTransition
	KindOrderClosed
	KindNotFound
	KindDuplicateOpenReorder
)

// String method for RuleKind enum
func (k RuleKind) String() string {
	switch k {
	case KindMissingPurchaseOrder:
		return "missing-purchase-order"
	case KindQuoteNotReviewed:
		return "quote-not-reviewed"
	case KindInvalidQuote:
		return "invalid-quote"
	case KindInvalidTransition:
		return "invalid-transition"
	case KindOrderClosed:
		return "order-closed"
	case KindNotFound:
		return "not-found"
	case KindDuplicateOpenReorder:
		return "duplicate-open-reorder"
	default:
		return "unknown"
	}
}

// RuleError is a business-rule violation. Two RuleErrors match under
// errors.Is when their kinds are equal, so callers can test against the
// exported sentinels below regardless of the reason text.
type RuleError struct {
	Kind   RuleKind
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

// Is matches RuleErrors by kind.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Kind == e.Kind
}

// Sentinel values for errors.Is matching.
var (
	ErrMissingPurchaseOrder = &RuleError{KindMissingPurchaseOrder, "purchase order number is required"}
	ErrQuoteNotReviewed     = &RuleError{KindQuoteNotReviewed, "price quote has not been reviewed"}
	ErrInvalidQuote         = &RuleError{KindInvalidQuote, "price quote is not valid"}
	ErrInvalidTransition    = &RuleError{KindInvalidTransition, "transition not allowed from current status"}
	ErrOrderClosed          = &RuleError{KindOrderClosed, "order is closed"}
	ErrNotFound             = &RuleError{KindNotFound, "entity not found"}
	ErrDuplicateOpenReorder = &RuleError{KindDuplicateOpenReorder, "part already has an open reorder"}
)

func ruleErrorf(kind RuleKind, format string, args ...interface{}) *RuleError {
	return &RuleError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// NotFound builds the not-found RuleError for an unknown entity id.
func NotFound(entity string, id interface{}) *RuleError {
	return ruleErrorf(KindNotFound, "%s not found: %v", entity, id)
}

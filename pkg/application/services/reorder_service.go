package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	"github.com/weldcell/sparetrack/pkg/domain/repositories"
	rules "github.com/weldcell/sparetrack/pkg/domain/services"
	"github.com/weldcell/sparetrack/pkg/infrastructure/events"
)

// Clock supplies the current time. Injected so transition timestamps and
// quote validity are deterministic under test.
type Clock func() time.Time

// QuoteDetails carries an optional negotiated price quote attached to a
// reorder at request time.
type QuoteDetails struct {
	Price      decimal.Decimal
	ValidUntil time.Time
}

// ReorderService is the command/query facade over the reorder lifecycle. It
// serializes transitions per reorder so that at most one command at a time can
// act on a given reorder; the loser of a race observes an invalid-transition
// error instead of double-applying side effects.
type ReorderService struct {
	parts    repositories.PartRepository
	reorders repositories.ReorderRepository
	machine  *rules.ReorderMachine
	store    events.Store
	logger   *zap.Logger
	clock    Clock

	lockMu sync.Mutex
	locks  map[entities.ReorderID]*sync.Mutex

	// partMu serializes part read-modify-write sections across commands,
	// including the one-open-reorder-per-part guard on create.
	partMu sync.Mutex
}

// NewReorderService creates a reorder service. A nil store, logger, or clock
// selects an in-memory store, a no-op logger, and the wall clock.
func NewReorderService(
	parts repositories.PartRepository,
	reorders repositories.ReorderRepository,
	machine *rules.ReorderMachine,
	store events.Store,
	logger *zap.Logger,
	clock Clock,
) *ReorderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = events.NewMemoryStore(logger)
	}
	if clock == nil {
		clock = time.Now
	}
	if machine == nil {
		machine = rules.NewReorderMachine(rules.DefaultFallbackLeadTimeDays)
	}
	return &ReorderService{
		parts:    parts,
		reorders: reorders,
		machine:  machine,
		store:    store,
		logger:   logger,
		clock:    clock,
		locks:    make(map[entities.ReorderID]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing transitions for one reorder.
func (s *ReorderService) lockFor(id entities.ReorderID) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}
	return mu
}

// CreateReorder raises a new pending reorder for a part. A non-positive
// quantity selects the part's configured reorder quantity. A part with a
// reorder already in flight is rejected with a duplicate-open-reorder error;
// the guard and the save happen under one lock so two concurrent creates for
// the same part cannot both pass it.
func (s *ReorderService) CreateReorder(
	partID entities.PartID,
	quantity entities.Quantity,
	quote *QuoteDetails,
	notes string,
) (*entities.Reorder, error) {
	reorder, err := s.createReorder(partID, quantity, quote, notes)
	if err != nil {
		return nil, err
	}

	s.store.Append(string(reorder.ID), events.NewReorderCreatedEvent(*reorder))
	s.logger.Info("reorder created",
		zap.String("reorder_id", string(reorder.ID)),
		zap.String("part_id", string(partID)),
		zap.Int64("quantity", int64(reorder.Quantity)),
		zap.String("total_price", reorder.TotalPrice.String()),
	)
	return reorder, nil
}

// createReorder runs the guard, the save, and the reclassification under the
// part lock.
func (s *ReorderService) createReorder(
	partID entities.PartID,
	quantity entities.Quantity,
	quote *QuoteDetails,
	notes string,
) (*entities.Reorder, error) {
	s.partMu.Lock()
	defer s.partMu.Unlock()

	part, err := s.parts.GetPart(partID)
	if err != nil {
		return nil, err
	}

	open, err := s.reorders.GetOpenReordersForPart(partID)
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		return nil, &rules.RuleError{
			Kind:   rules.KindDuplicateOpenReorder,
			Reason: fmt.Sprintf("part %s already has reorder %s in flight", partID, open[0].ID),
		}
	}

	if quantity <= 0 {
		quantity = part.ReorderQuantity
	}

	reorder, err := entities.NewReorder(entities.ReorderID(uuid.NewString()), part, quantity, s.clock())
	if err != nil {
		return nil, err
	}
	if quote != nil {
		price := quote.Price
		validUntil := quote.ValidUntil
		reorder.QuotedPrice = &price
		reorder.QuoteValidity = &validUntil
	}
	reorder.Notes = notes

	if err := s.reorders.SaveReorder(reorder); err != nil {
		return nil, err
	}
	if err := s.reclassifyPartLocked(partID); err != nil {
		return nil, err
	}
	return reorder, nil
}

// Approve approves a pending reorder. The purchase order number must be
// present, the approver must attest to having reviewed the quote, and the
// quote must be valid. When the reorder carries a quote validity date the
// attestation is additionally checked against it, so an expired quote cannot
// be approved even when attested.
func (s *ReorderService) Approve(
	id entities.ReorderID,
	purchaseOrderNumber string,
	quoteReviewed, quoteValid bool,
) (*entities.Reorder, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	reorder, err := s.reorders.GetReorder(id)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	effectiveQuoteValid := quoteValid
	if reorder.QuoteValidity != nil {
		effectiveQuoteValid = quoteValid && rules.QuoteValid(reorder.QuoteValidity, now)
	}

	if err := s.machine.Approve(reorder, purchaseOrderNumber, quoteReviewed, effectiveQuoteValid, now); err != nil {
		return nil, err
	}
	if err := s.reorders.SaveReorder(reorder); err != nil {
		return nil, err
	}

	s.store.Append(string(reorder.ID), events.NewReorderApprovedEvent(*reorder))
	s.logger.Info("reorder approved",
		zap.String("reorder_id", string(reorder.ID)),
		zap.String("purchase_order", purchaseOrderNumber),
	)
	return reorder, nil
}

// Reject cancels a pending reorder.
func (s *ReorderService) Reject(id entities.ReorderID) (*entities.Reorder, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	reorder, err := s.reorders.GetReorder(id)
	if err != nil {
		return nil, err
	}
	if err := s.machine.Reject(reorder); err != nil {
		return nil, err
	}
	if err := s.reorders.SaveReorder(reorder); err != nil {
		return nil, err
	}
	if err := s.reclassifyPart(reorder.PartID); err != nil {
		return nil, err
	}

	s.store.Append(string(reorder.ID), events.NewReorderRejectedEvent(*reorder))
	s.logger.Info("reorder rejected", zap.String("reorder_id", string(reorder.ID)))
	return reorder, nil
}

// Cancel cancels an approved reorder before it is placed.
func (s *ReorderService) Cancel(id entities.ReorderID) (*entities.Reorder, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	reorder, err := s.reorders.GetReorder(id)
	if err != nil {
		return nil, err
	}
	if err := s.machine.Cancel(reorder); err != nil {
		return nil, err
	}
	if err := s.reorders.SaveReorder(reorder); err != nil {
		return nil, err
	}
	if err := s.reclassifyPart(reorder.PartID); err != nil {
		return nil, err
	}

	s.store.Append(string(reorder.ID), events.NewReorderCancelledEvent(*reorder))
	s.logger.Info("reorder cancelled", zap.String("reorder_id", string(reorder.ID)))
	return reorder, nil
}

// PlaceOrder places an approved reorder with the supplier. Expected delivery
// is computed from the part's lead time, falling back to the machine's
// configured window when the lead time is unknown.
func (s *ReorderService) PlaceOrder(id entities.ReorderID) (*entities.Reorder, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	reorder, err := s.reorders.GetReorder(id)
	if err != nil {
		return nil, err
	}

	leadTimeDays := 0
	part, err := s.parts.GetPart(reorder.PartID)
	if err == nil {
		leadTimeDays = part.LeadTimeDays
	}

	now := s.clock()
	if err := s.machine.PlaceOrder(reorder, leadTimeDays, now); err != nil {
		return nil, err
	}
	if err := s.reorders.SaveReorder(reorder); err != nil {
		return nil, err
	}

	s.partMu.Lock()
	if part, err := s.parts.GetPart(reorder.PartID); err == nil {
		ordered := now
		part.LastOrdered = &ordered
		if err := s.parts.SavePart(part); err != nil {
			s.partMu.Unlock()
			return nil, err
		}
	}
	s.partMu.Unlock()

	if err := s.reclassifyPart(reorder.PartID); err != nil {
		return nil, err
	}

	s.store.Append(string(reorder.ID), events.NewReorderPlacedEvent(*reorder, leadTimeDays))
	s.logger.Info("order placed",
		zap.String("reorder_id", string(reorder.ID)),
		zap.Timep("expected_delivery", reorder.ExpectedDelivery),
	)
	return reorder, nil
}

// MarkInTransit records that an ordered reorder has shipped.
func (s *ReorderService) MarkInTransit(id entities.ReorderID) (*entities.Reorder, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	reorder, err := s.reorders.GetReorder(id)
	if err != nil {
		return nil, err
	}
	if err := s.machine.MarkInTransit(reorder); err != nil {
		return nil, err
	}
	if err := s.reorders.SaveReorder(reorder); err != nil {
		return nil, err
	}

	s.store.Append(string(reorder.ID), events.NewReorderInTransitEvent(*reorder))
	s.logger.Info("reorder in transit", zap.String("reorder_id", string(reorder.ID)))
	return reorder, nil
}

// Receive completes delivery: the reorder moves to delivered, the owning
// part's stock increases by the reorder quantity, and the part is
// reclassified against the post-increment quantity and the now-smaller open
// reorder set.
func (s *ReorderService) Receive(id entities.ReorderID, invoiceNumber, grnNumber string) (*entities.Reorder, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	reorder, err := s.reorders.GetReorder(id)
	if err != nil {
		return nil, err
	}
	// The owning part must exist before the transition is applied so a stock
	// increment is never lost.
	if _, err := s.parts.GetPart(reorder.PartID); err != nil {
		return nil, err
	}

	now := s.clock()
	if err := s.machine.Receive(reorder, invoiceNumber, grnNumber, now); err != nil {
		return nil, err
	}
	if err := s.reorders.SaveReorder(reorder); err != nil {
		return nil, err
	}

	s.partMu.Lock()
	part, err := s.parts.GetPart(reorder.PartID)
	if err != nil {
		s.partMu.Unlock()
		return nil, err
	}
	part.StockQuantity += reorder.Quantity
	restocked := now
	part.LastRestocked = &restocked
	newLevel := part.StockQuantity
	if err := s.parts.SavePart(part); err != nil {
		s.partMu.Unlock()
		return nil, err
	}
	s.partMu.Unlock()

	if err := s.reclassifyPart(reorder.PartID); err != nil {
		return nil, err
	}

	s.store.Append(string(reorder.ID), events.NewReorderDeliveredEvent(*reorder, newLevel))
	s.store.Append(string(reorder.PartID), events.NewStockReplenishedEvent(reorder.PartID, reorder.Quantity, newLevel))
	s.logger.Info("reorder delivered",
		zap.String("reorder_id", string(reorder.ID)),
		zap.String("part_id", string(reorder.PartID)),
		zap.Int64("new_stock_level", int64(newLevel)),
	)
	return reorder, nil
}

// ClassifyPart derives a part's current stock status from its quantities and
// its open reorder set.
func (s *ReorderService) ClassifyPart(partID entities.PartID) (entities.StockStatus, error) {
	part, err := s.parts.GetPart(partID)
	if err != nil {
		return entities.InStock, err
	}
	open, err := s.reorders.GetOpenReordersForPart(partID)
	if err != nil {
		return entities.InStock, err
	}
	return rules.ClassifyStock(part.StockQuantity, part.ReorderPoint, len(open) > 0), nil
}

// IsQuoteValid reports whether the reorder's price quote may still be honored
// today.
func (s *ReorderService) IsQuoteValid(id entities.ReorderID) (bool, error) {
	reorder, err := s.reorders.GetReorder(id)
	if err != nil {
		return false, err
	}
	return rules.QuoteValid(reorder.QuoteValidity, s.clock()), nil
}

// GetReorder returns the reorder with the given id.
func (s *ReorderService) GetReorder(id entities.ReorderID) (*entities.Reorder, error) {
	return s.reorders.GetReorder(id)
}

// reclassifyPart recomputes and stores a part's derived status, emitting a
// reclassification event when it changes.
func (s *ReorderService) reclassifyPart(partID entities.PartID) error {
	s.partMu.Lock()
	defer s.partMu.Unlock()
	return s.reclassifyPartLocked(partID)
}

// reclassifyPartLocked is reclassifyPart for callers already holding partMu.
func (s *ReorderService) reclassifyPartLocked(partID entities.PartID) error {
	part, err := s.parts.GetPart(partID)
	if err != nil {
		return err
	}
	open, err := s.reorders.GetOpenReordersForPart(partID)
	if err != nil {
		return err
	}

	oldStatus := part.Status
	newStatus := rules.ClassifyStock(part.StockQuantity, part.ReorderPoint, len(open) > 0)
	if newStatus == oldStatus {
		return nil
	}

	part.Status = newStatus
	if err := s.parts.SavePart(part); err != nil {
		return err
	}
	s.store.Append(string(partID), events.NewStockReclassifiedEvent(partID, oldStatus, newStatus))
	return nil
}

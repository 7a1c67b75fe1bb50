package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	"github.com/weldcell/sparetrack/pkg/domain/repositories"
	rules "github.com/weldcell/sparetrack/pkg/domain/services"
	"github.com/weldcell/sparetrack/pkg/infrastructure/events"
)

// SupportService manages support requests raised against reorders. Requests
// are a side channel: they reference an order but never mutate its state.
type SupportService struct {
	reorders repositories.ReorderRepository
	requests repositories.SupportRepository
	store    events.Store
	logger   *zap.Logger
	clock    Clock
}

// NewSupportService creates a support service. A nil store, logger, or clock
// selects an in-memory store, a no-op logger, and the wall clock.
func NewSupportService(
	reorders repositories.ReorderRepository,
	requests repositories.SupportRepository,
	store events.Store,
	logger *zap.Logger,
	clock Clock,
) *SupportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = events.NewMemoryStore(logger)
	}
	if clock == nil {
		clock = time.Now
	}
	return &SupportService{
		reorders: reorders,
		requests: requests,
		store:    store,
		logger:   logger,
		clock:    clock,
	}
}

// Open raises a support request against a reorder. The order must still be in
// flight; a request opened earlier stays workable after the order closes, but
// no new one can be raised against a delivered or cancelled order.
func (s *SupportService) Open(
	orderID entities.ReorderID,
	requestType entities.SupportType,
	notes string,
) (*entities.SupportRequest, error) {
	reorder, err := s.reorders.GetReorder(orderID)
	if err != nil {
		return nil, err
	}

	if !reorder.IsOpen() {
		return nil, &rules.RuleError{
			Kind:   rules.KindOrderClosed,
			Reason: fmt.Sprintf("order %s is %s, no support can be raised against it", orderID, reorder.Status),
		}
	}

	request := &entities.SupportRequest{
		ID:            entities.SupportRequestID(uuid.NewString()),
		OrderID:       orderID,
		Type:          requestType,
		Notes:         notes,
		Status:        entities.SupportOpen,
		DateSubmitted: s.clock(),
	}
	if err := s.requests.SaveRequest(request); err != nil {
		return nil, err
	}

	s.store.Append(string(request.ID), events.NewSupportOpenedEvent(*request))
	s.logger.Info("support request opened",
		zap.String("request_id", string(request.ID)),
		zap.String("order_id", string(orderID)),
		zap.String("type", requestType.String()),
	)
	return request, nil
}

// Start moves an open request to in-progress.
func (s *SupportService) Start(id entities.SupportRequestID) (*entities.SupportRequest, error) {
	request, err := s.requests.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if request.Status != entities.SupportOpen {
		return nil, supportTransitionError(request, "start")
	}

	request.Status = entities.SupportInProgress
	if err := s.requests.SaveRequest(request); err != nil {
		return nil, err
	}
	s.logger.Info("support request in progress", zap.String("request_id", string(id)))
	return request, nil
}

// Resolve records the resolution of an open or in-progress request.
func (s *SupportService) Resolve(id entities.SupportRequestID, responseNotes string) (*entities.SupportRequest, error) {
	request, err := s.requests.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if request.Terminal() {
		return nil, supportTransitionError(request, "resolve")
	}

	now := s.clock()
	request.Status = entities.SupportResolved
	request.DateResolved = &now
	request.ResponseNotes = responseNotes
	if err := s.requests.SaveRequest(request); err != nil {
		return nil, err
	}

	s.store.Append(string(request.ID), events.NewSupportResolvedEvent(*request))
	s.logger.Info("support request resolved", zap.String("request_id", string(id)))
	return request, nil
}

// Close ends a request without a resolution.
func (s *SupportService) Close(id entities.SupportRequestID) (*entities.SupportRequest, error) {
	request, err := s.requests.GetRequest(id)
	if err != nil {
		return nil, err
	}
	if request.Terminal() {
		return nil, supportTransitionError(request, "close")
	}

	now := s.clock()
	request.Status = entities.SupportClosed
	request.DateResolved = &now
	if err := s.requests.SaveRequest(request); err != nil {
		return nil, err
	}

	s.store.Append(string(request.ID), events.NewSupportClosedEvent(*request))
	s.logger.Info("support request closed", zap.String("request_id", string(id)))
	return request, nil
}

// RequestsForOrder returns all support requests raised against one reorder,
// oldest first.
func (s *SupportService) RequestsForOrder(orderID entities.ReorderID) ([]*entities.SupportRequest, error) {
	return s.requests.GetRequestsForOrder(orderID)
}

func supportTransitionError(request *entities.SupportRequest, command string) *rules.RuleError {
	return &rules.RuleError{
		Kind:   rules.KindInvalidTransition,
		Reason: fmt.Sprintf("cannot %s support request %s in status %s", command, request.ID, request.Status),
	}
}

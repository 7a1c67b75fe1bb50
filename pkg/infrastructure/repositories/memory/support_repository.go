package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	"github.com/weldcell/sparetrack/pkg/domain/repositories"
	"github.com/weldcell/sparetrack/pkg/domain/services"
)

// SupportRepository provides in-memory support request storage
type SupportRepository struct {
	mu       sync.RWMutex
	requests map[entities.SupportRequestID]entities.SupportRequest
}

// NewSupportRepository creates a new in-memory support request repository
func NewSupportRepository() *SupportRepository {
	return &SupportRepository{
		requests: make(map[entities.SupportRequestID]entities.SupportRequest),
	}
}

// Verify interface compliance
var _ repositories.SupportRepository = (*SupportRepository)(nil)

// GetRequest returns a copy of the support request with the given id
func (r *SupportRepository) GetRequest(id entities.SupportRequestID) (*entities.SupportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, services.NotFound("support request", id)
	}
	return &request, nil
}

// GetRequestsForOrder returns all support requests raised against a reorder,
// oldest first
func (r *SupportRepository) GetRequestsForOrder(orderID entities.ReorderID) ([]*entities.SupportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var requests []*entities.SupportRequest
	for id := range r.requests {
		request := r.requests[id]
		if request.OrderID == orderID {
			requests = append(requests, &request)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].DateSubmitted.Before(requests[j].DateSubmitted)
	})
	return requests, nil
}

// SaveRequest stores the support request, overwriting any existing entry
func (r *SupportRepository) SaveRequest(request *entities.SupportRequest) error {
	if request == nil {
		return fmt.Errorf("support request cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[request.ID] = *request
	return nil
}

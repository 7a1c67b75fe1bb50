package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	"github.com/weldcell/sparetrack/pkg/domain/repositories"
	"github.com/weldcell/sparetrack/pkg/domain/services"
)

// ReorderRepository provides in-memory reorder storage with copy-in/copy-out
// semantics. History is retained: reorders are never removed.
type ReorderRepository struct {
	mu       sync.RWMutex
	reorders map[entities.ReorderID]entities.Reorder
}

// NewReorderRepository creates a new in-memory reorder repository
func NewReorderRepository(capacity int) *ReorderRepository {
	return &ReorderRepository{
		reorders: make(map[entities.ReorderID]entities.Reorder, capacity),
	}
}

// Verify interface compliance
var _ repositories.ReorderRepository = (*ReorderRepository)(nil)

// GetReorder returns a copy of the reorder with the given id
func (r *ReorderRepository) GetReorder(id entities.ReorderID) (*entities.Reorder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reorder, ok := r.reorders[id]
	if !ok {
		return nil, services.NotFound("reorder", id)
	}
	return &reorder, nil
}

// GetAllReorders returns copies of all reorders, newest request first
func (r *ReorderRepository) GetAllReorders() ([]*entities.Reorder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reorders := make([]*entities.Reorder, 0, len(r.reorders))
	for id := range r.reorders {
		reorder := r.reorders[id]
		reorders = append(reorders, &reorder)
	}
	sort.Slice(reorders, func(i, j int) bool {
		return reorders[i].DateRequested.After(reorders[j].DateRequested)
	})
	return reorders, nil
}

// GetOpenReordersForPart returns the part's reorders that are still in flight
func (r *ReorderRepository) GetOpenReordersForPart(partID entities.PartID) ([]*entities.Reorder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var open []*entities.Reorder
	for id := range r.reorders {
		reorder := r.reorders[id]
		if reorder.PartID == partID && reorder.IsOpen() {
			open = append(open, &reorder)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		return open[i].DateRequested.Before(open[j].DateRequested)
	})
	return open, nil
}

// SaveReorder stores the reorder, overwriting any existing entry
func (r *ReorderRepository) SaveReorder(reorder *entities.Reorder) error {
	if reorder == nil {
		return fmt.Errorf("reorder cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reorders[reorder.ID] = *reorder
	return nil
}

// LoadReorders bulk-loads reorders, rejecting duplicate ids
func (r *ReorderRepository) LoadReorders(reorders []*entities.Reorder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var duplicates []string
	for _, reorder := range reorders {
		if _, exists := r.reorders[reorder.ID]; exists {
			duplicates = append(duplicates, string(reorder.ID))
			continue
		}
		r.reorders[reorder.ID] = *reorder
	}

	if len(duplicates) > 0 {
		return fmt.Errorf("duplicate reorder ids found: %s", strings.Join(duplicates, ", "))
	}
	return nil
}

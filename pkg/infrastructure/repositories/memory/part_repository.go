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

// PartRepository provides in-memory spare part storage. Parts are stored by
// value and copied on the way in and out, so readers never observe a
// half-applied mutation.
type PartRepository struct {
	mu    sync.RWMutex
	parts map[entities.PartID]entities.SparePart
}

// NewPartRepository creates a new in-memory part repository
func NewPartRepository(capacity int) *PartRepository {
	return &PartRepository{
		parts: make(map[entities.PartID]entities.SparePart, capacity),
	}
}

// Verify interface compliance
var _ repositories.PartRepository = (*PartRepository)(nil)

// GetPart returns a copy of the part with the given id
func (r *PartRepository) GetPart(id entities.PartID) (*entities.SparePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	part, ok := r.parts[id]
	if !ok {
		return nil, services.NotFound("part", id)
	}
	return &part, nil
}

// GetAllParts returns copies of all parts, ordered by part number
func (r *PartRepository) GetAllParts() ([]*entities.SparePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parts := make([]*entities.SparePart, 0, len(r.parts))
	for id := range r.parts {
		part := r.parts[id]
		parts = append(parts, &part)
	}
	sort.Slice(parts, func(i, j int) bool {
		return parts[i].PartNumber < parts[j].PartNumber
	})
	return parts, nil
}

// SavePart stores the part, overwriting any existing entry with the same id
func (r *PartRepository) SavePart(part *entities.SparePart) error {
	if part == nil {
		return fmt.Errorf("part cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts[part.ID] = *part
	return nil
}

// LoadParts bulk-loads parts, rejecting duplicate ids
func (r *PartRepository) LoadParts(parts []*entities.SparePart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var duplicates []string
	for _, part := range parts {
		if _, exists := r.parts[part.ID]; exists {
			duplicates = append(duplicates, string(part.ID))
			continue
		}
		r.parts[part.ID] = *part
	}

	if len(duplicates) > 0 {
		return fmt.Errorf("duplicate part ids found: %s", strings.Join(duplicates, ", "))
	}
	return nil
}

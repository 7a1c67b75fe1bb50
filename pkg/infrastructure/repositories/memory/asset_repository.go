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

// AssetRepository provides in-memory asset storage. The engine only reads
// assets, so copies share the installed-parts slice.
type AssetRepository struct {
	mu     sync.RWMutex
	assets map[entities.AssetID]entities.Asset
}

// NewAssetRepository creates a new in-memory asset repository
func NewAssetRepository(capacity int) *AssetRepository {
	return &AssetRepository{
		assets: make(map[entities.AssetID]entities.Asset, capacity),
	}
}

// Verify interface compliance
var _ repositories.AssetRepository = (*AssetRepository)(nil)

// GetAsset returns a copy of the asset with the given id
func (r *AssetRepository) GetAsset(id entities.AssetID) (*entities.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, services.NotFound("asset", id)
	}
	return &asset, nil
}

// GetAllAssets returns copies of all assets, ordered by name
func (r *AssetRepository) GetAllAssets() ([]*entities.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assets := make([]*entities.Asset, 0, len(r.assets))
	for id := range r.assets {
		asset := r.assets[id]
		assets = append(assets, &asset)
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Name < assets[j].Name
	})
	return assets, nil
}

// LoadAssets bulk-loads assets, rejecting duplicate ids
func (r *AssetRepository) LoadAssets(assets []*entities.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var duplicates []string
	for _, asset := range assets {
		if _, exists := r.assets[asset.ID]; exists {
			duplicates = append(duplicates, string(asset.ID))
			continue
		}
		r.assets[asset.ID] = *asset
	}

	if len(duplicates) > 0 {
		return fmt.Errorf("duplicate asset ids found: %s", strings.Join(duplicates, ", "))
	}
	return nil
}

package repositories

import "github.com/weldcell/sparetrack/pkg/domain/entities"

// AssetRepository provides read access to machine assets. The reorder engine
// treats assets as a read-only collaborator.
type AssetRepository interface {
	GetAsset(id entities.AssetID) (*entities.Asset, error)
	GetAllAssets() ([]*entities.Asset, error)
	LoadAssets(assets []*entities.Asset) error
}

package repositories

import "github.com/weldcell/sparetrack/pkg/domain/entities"

// PartRepository provides access to the spare part master data
type PartRepository interface {
	GetPart(id entities.PartID) (*entities.SparePart, error)
	GetAllParts() ([]*entities.SparePart, error)
	SavePart(part *entities.SparePart) error
	LoadParts(parts []*entities.SparePart) error
}

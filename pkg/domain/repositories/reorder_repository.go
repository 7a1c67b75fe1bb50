package repositories

import "github.com/weldcell/sparetrack/pkg/domain/entities"

// ReorderRepository provides access to reorders. Reorders are never deleted;
// delivered and cancelled ones are retained as history.
type ReorderRepository interface {
	GetReorder(id entities.ReorderID) (*entities.Reorder, error)
	GetAllReorders() ([]*entities.Reorder, error)
	// GetOpenReordersForPart returns the reorders for a part whose status is
	// neither delivered nor cancelled.
	GetOpenReordersForPart(partID entities.PartID) ([]*entities.Reorder, error)
	SaveReorder(reorder *entities.Reorder) error
	LoadReorders(reorders []*entities.Reorder) error
}

package services

import "github.com/weldcell/sparetrack/pkg/domain/entities"

// ClassifyStock derives a part's stock status from its current quantity, its
// reorder point, and whether an open (non-terminal) reorder exists for it.
// An in-flight purchase always wins over the raw counts.
//
// Pure function: the result must be recomputed after every mutation to the
// quantity or to the part's open-reorder set, and callers never hand-set a
// part's status except with this result.
func ClassifyStock(stockQuantity, reorderPoint entities.Quantity, hasOpenReorder bool) entities.StockStatus {
	if hasOpenReorder {
		return entities.OnOrder
	}
	if stockQuantity == 0 {
		return entities.OutOfStock
	}
	if stockQuantity <= reorderPoint {
		return entities.LowStock
	}
	return entities.InStock
}

package services

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/weldcell/sparetrack/pkg/domain/entities"
	"github.com/weldcell/sparetrack/pkg/domain/repositories"
	rules "github.com/weldcell/sparetrack/pkg/domain/services"
)

// DefaultRecentWindowDays is the lookback window for the recent reorder cost
// figure when no override is configured.
const DefaultRecentWindowDays = 30

// DashboardService derives summary statistics over the live collections.
// Every figure is recomputed on demand; nothing here is cached or persisted.
type DashboardService struct {
	parts            repositories.PartRepository
	reorders         repositories.ReorderRepository
	assets           repositories.AssetRepository
	recentWindowDays int
	logger           *zap.Logger
}

// NewDashboardService creates a dashboard service. A non-positive window
// selects the default lookback of 30 days.
func NewDashboardService(
	parts repositories.PartRepository,
	reorders repositories.ReorderRepository,
	assets repositories.AssetRepository,
	recentWindowDays int,
	logger *zap.Logger,
) *DashboardService {
	if recentWindowDays <= 0 {
		recentWindowDays = DefaultRecentWindowDays
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		parts:            parts,
		reorders:         reorders,
		assets:           assets,
		recentWindowDays: recentWindowDays,
		logger:           logger,
	}
}

// Summarize computes the dashboard snapshot as of the given time.
//
// Low stock items counts parts classified low-stock or out-of-stock; a part
// with a reorder in flight classifies on-order and is not counted. Pending
// reorders counts both pending and approved orders, since both still need
// action before the supplier is engaged. Assets in maintenance includes those
// under repair.
func (s *DashboardService) Summarize(now time.Time) (*entities.DashboardStats, error) {
	parts, err := s.parts.GetAllParts()
	if err != nil {
		return nil, err
	}
	reorders, err := s.reorders.GetAllReorders()
	if err != nil {
		return nil, err
	}
	assets, err := s.assets.GetAllAssets()
	if err != nil {
		return nil, err
	}

	openByPart := make(map[entities.PartID]bool)
	for _, reorder := range reorders {
		if reorder.IsOpen() {
			openByPart[reorder.PartID] = true
		}
	}

	stats := &entities.DashboardStats{
		TotalAssets:          len(assets),
		TotalSparePartsCount: len(parts),
		RecentReorderCost:    decimal.Zero,
	}

	for _, asset := range assets {
		if asset.Status == entities.Maintenance || asset.Status == entities.Repair {
			stats.AssetsInMaintenance++
		}
	}

	for _, part := range parts {
		status := rules.ClassifyStock(part.StockQuantity, part.ReorderPoint, openByPart[part.ID])
		if status == entities.LowStock || status == entities.OutOfStock {
			stats.LowStockItems++
		}
	}

	cutoff := now.AddDate(0, 0, -s.recentWindowDays)
	for _, reorder := range reorders {
		if reorder.Status == entities.Pending || reorder.Status == entities.Approved {
			stats.PendingReorders++
		}
		if !reorder.DateRequested.Before(cutoff) {
			stats.RecentReorderCost = stats.RecentReorderCost.Add(reorder.TotalPrice)
		}
	}

	s.logger.Debug("dashboard summarized",
		zap.Int("total_assets", stats.TotalAssets),
		zap.Int("low_stock_items", stats.LowStockItems),
		zap.Int("pending_reorders", stats.PendingReorders),
		zap.String("recent_reorder_cost", stats.RecentReorderCost.String()),
	)
	return stats, nil
}

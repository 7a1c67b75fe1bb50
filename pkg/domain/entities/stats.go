package entities

import "github.com/shopspring/decimal"

// DashboardStats is a derived snapshot over the live collections. It is
// recomputed on demand and never persisted.
type DashboardStats struct {
	TotalAssets          int
	AssetsInMaintenance  int
	TotalSparePartsCount int
	LowStockItems        int
	PendingReorders      int
	RecentReorderCost    decimal.Decimal
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tdiallo/papistock-api/internal/domain/entity"
)

// DashboardResponse agrégats du tableau de bord.
type DashboardResponse struct {
	ItemCount     int64           `json:"item_count"`
	SupplierCount int64           `json:"supplier_count"`
	LocationCount int64           `json:"location_count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalWeight   decimal.Decimal `json:"total_weight"`

	LowStockItems   []ItemResponse          `json:"low_stock_items"`
	RecentMovements []*entity.StockMovement `json:"recent_movements"`
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tdiallo/papistock-api/internal/domain/entity"
)

// CreateItemRequest données de création d'un article. Si InitialQuantity est
// non nul, un unique mouvement IN est synthétisé à la création (quantité
// initiale « semée », jamais stockée comme compteur).
type CreateItemRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SKU          string          `json:"sku"`
	Laise        float64         `json:"laise"`
	Grammage     decimal.Decimal `json:"grammage"`
	ReorderLevel *int            `json:"reorder_level"`
	TypeID       *uint           `json:"type_id"`
	SupplierID   *uint           `json:"supplier_id"`
	LocationID   *uint           `json:"location_id"`

	InitialQuantity int              `json:"initial_quantity"`
	InitialWeight   *decimal.Decimal `json:"initial_weight"`
}

// UpdateItemRequest fusion partielle des champs d'un article. La quantité
// courante n'est pas modifiable ici : elle est dérivée du journal.
type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	SKU          *string          `json:"sku"`
	Laise        *float64         `json:"laise"`
	Grammage     *decimal.Decimal `json:"grammage"`
	ReorderLevel *int             `json:"reorder_level"`
	TypeID       *uint            `json:"type_id"`
	SupplierID   *uint            `json:"supplier_id"`
	LocationID   *uint            `json:"location_id"`
}

// ItemResponse article avec son solde dérivé.
type ItemResponse struct {
	entity.Item
	CurrentQuantity int             `json:"current_quantity"`
	CurrentWeight   decimal.Decimal `json:"current_weight"`
	LowStock        bool            `json:"low_stock"`
}

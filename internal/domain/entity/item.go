package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item représente une bobine de papier suivie par SKU.
// La quantité et le poids courants ne sont PAS des colonnes : ils sont
// toujours dérivés des StockMovements associés (voir internal/domain/stock).
type Item struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	SKU         string          `gorm:"uniqueIndex;not null" json:"sku"`
	Laise       float64         `gorm:"not null" json:"laise"`    // largeur de bobine, cm
	Grammage    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"grammage"` // g/m²
	ReorderLevel *int           `json:"reorder_level"` // nil = pas de seuil de réassort

	TypeID     *uint `gorm:"index" json:"type_id"`
	SupplierID *uint `gorm:"index" json:"supplier_id"`
	LocationID *uint `gorm:"index" json:"location_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations (chargement statique par ressource, voir les repositories)
	Type           *MaterialType   `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Supplier       *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Location       *Location       `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	StockMovements []StockMovement `gorm:"foreignKey:ItemID" json:"stock_movements,omitempty"`
}

// TableName fixe le nom de table pour Item.
func (Item) TableName() string { return "items" }

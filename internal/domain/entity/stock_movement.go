package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sens d'un mouvement de stock.
const (
	MovementTypeIn  = "IN"  // entrée (réception)
	MovementTypeOut = "OUT" // sortie (consommation)
)

// StockMovement est une ligne du journal de stock : une variation signée de
// quantité/poids pour un article. Convention signée à l'écriture : les
// mouvements IN portent des valeurs positives, les OUT des valeurs négatives,
// de sorte que la somme brute des lignes donne directement le solde.
type StockMovement struct {
	ID       uint             `gorm:"primaryKey" json:"id"`
	ItemID   uint             `gorm:"index;not null" json:"item_id"`
	Type     string           `gorm:"type:varchar(3);not null" json:"type"` // IN | OUT
	Quantity int              `gorm:"not null" json:"quantity"`             // signée
	Weight   *decimal.Decimal `gorm:"type:decimal(12,3)" json:"weight"`     // kg, signé, optionnel
	Date     time.Time        `gorm:"not null" json:"date"`
	Notes    string           `json:"notes"`

	UserID        *uint `gorm:"index" json:"user_id"`
	TransactionID *uint `gorm:"index" json:"transaction_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName fixe le nom de table pour StockMovement.
func (StockMovement) TableName() string { return "stock_movements" }

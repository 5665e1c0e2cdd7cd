package entity

import "time"

// Supplier représente un fournisseur de bobines. Référencé par Item
// (fournisseur par défaut) et par les bons de réception.
type Supplier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	ShortName string    `json:"short_name"`
	Origin    string    `json:"origin"` // pays / origine, optionnel
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName fixe le nom de table pour Supplier.
func (Supplier) TableName() string { return "suppliers" }

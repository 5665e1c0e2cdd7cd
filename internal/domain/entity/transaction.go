package entity

import "time"

// Types de lot de mouvements.
const (
	TransactionTypeReception    = "RECEPTION"
	TransactionTypeConsommation = "CONSOMMATION"
)

// Transaction est l'en-tête d'un lot de mouvements créés ensemble : un bon de
// réception fournisseur ou un bon de consommation. Supprimer la transaction
// supprime ses mouvements (cascade déclarée sur la contrainte).
type Transaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"` // RECEPTION | CONSOMMATION
	Reference string    `gorm:"index" json:"reference"`                // code court généré
	Date      time.Time `gorm:"not null" json:"date"`
	Notes     string    `json:"notes"`

	SupplierID *uint `gorm:"index" json:"supplier_id"`
	UserID     *uint `gorm:"index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Supplier       *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	User           *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	StockMovements []StockMovement `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"stock_movements,omitempty"`
}

// TableName fixe le nom de table pour Transaction.
func (Transaction) TableName() string { return "transactions" }

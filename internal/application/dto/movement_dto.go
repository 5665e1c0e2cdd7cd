package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest création d'une ligne de journal isolée. Quantity est
// saisie positive ; le sens est porté par Type et le signe est appliqué à
// l'écriture (convention signée).
type CreateMovementRequest struct {
	ItemID   uint             `json:"item_id"`
	Type     string           `json:"type"` // IN | OUT
	Quantity int              `json:"quantity"`
	Weight   *decimal.Decimal `json:"weight"`
	Date     *time.Time       `json:"date"` // défaut : maintenant
	Notes    string           `json:"notes"`
	UserID   *uint            `json:"user_id"`
}

// UpdateMovementRequest fusion partielle d'une ligne de journal.
type UpdateMovementRequest struct {
	Quantity *int             `json:"quantity"`
	Weight   *decimal.Decimal `json:"weight"`
	Date     *time.Time       `json:"date"`
	Notes    *string          `json:"notes"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchLine une ligne d'un lot (réception ou consommation). ID est renseigné
// uniquement lors de la réconciliation d'un lot existant : une ligne avec ID
// est mise à jour en place, une ligne sans ID est créée.
type BatchLine struct {
	ID       *uint            `json:"id"`
	ItemID   uint             `json:"item_id"`
	Quantity int              `json:"quantity"` // saisie positive
	Weight   *decimal.Decimal `json:"weight"`   // saisi positif, kg
	Notes    string           `json:"notes"`
}

// CreateBatchRequest en-tête + lignes d'un lot de mouvements créés ensemble.
type CreateBatchRequest struct {
	Date       *time.Time  `json:"date"` // défaut : maintenant
	Notes      string      `json:"notes"`
	SupplierID *uint       `json:"supplier_id"`
	UserID     *uint       `json:"user_id"`
	Lines      []BatchLine `json:"lines"`
}

// UpdateBatchRequest fusion partielle de l'en-tête d'un lot (pas les lignes).
type UpdateBatchRequest struct {
	Date       *time.Time `json:"date"`
	Notes      *string    `json:"notes"`
	SupplierID *uint      `json:"supplier_id"`
}

// UpdateBatchLinesRequest nouvelle liste de lignes pour un lot existant
// (réconciliation à trois voies : update / create / delete).
type UpdateBatchLinesRequest struct {
	Lines []BatchLine `json:"lines"`
}

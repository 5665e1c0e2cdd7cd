// Package stock contient l'agrégateur de journal : des fonctions pures qui
// dérivent la quantité et le poids courants d'un article depuis ses
// mouvements. Aucun compteur n'est stocké ; le solde est recalculé à la
// lecture, ce qui le rend idempotent et insensible à l'ordre d'insertion.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tdiallo/papistock-api/internal/domain/entity"
)

// CurrentQuantity renvoie le solde de quantité d'une liste de mouvements.
// Convention signée à l'écriture : somme brute commutative. Liste vide -> 0.
func CurrentQuantity(movements []entity.StockMovement) int {
	total := 0
	for _, m := range movements {
		total += m.Quantity
	}
	return total
}

// CurrentWeight renvoie le solde de poids (kg) d'une liste de mouvements.
// Un poids absent sur une ligne vaut 0, ce n'est pas une erreur.
func CurrentWeight(movements []entity.StockMovement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.Weight != nil {
			total = total.Add(*m.Weight)
		}
	}
	return total
}

// IsLowStock indique si l'article est sous son seuil de réassort.
// Comparaison stricte : quantité == seuil n'est PAS un stock bas.
// Sans seuil (nil), l'article n'est jamais en stock bas.
func IsLowStock(item *entity.Item, movements []entity.StockMovement) bool {
	if item == nil || item.ReorderLevel == nil {
		return false
	}
	return CurrentQuantity(movements) < *item.ReorderLevel
}

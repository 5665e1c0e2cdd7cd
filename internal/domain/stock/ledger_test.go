package stock_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/stock"
)

func w(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Journal vide : solde 0/0, pas d'erreur.
func TestLedger_JournalVide(t *testing.T) {
	assert.Equal(t, 0, stock.CurrentQuantity(nil))
	assert.True(t, stock.CurrentWeight(nil).IsZero())
	assert.Equal(t, 0, stock.CurrentQuantity([]entity.StockMovement{}))
}

// Convention signée : IN positif, OUT négatif, somme brute.
func TestLedger_ConventionSignee(t *testing.T) {
	movements := []entity.StockMovement{
		{Type: entity.MovementTypeIn, Quantity: 100, Weight: w("250.5")},
		{Type: entity.MovementTypeOut, Quantity: -30, Weight: w("-75.5")},
	}
	assert.Equal(t, 70, stock.CurrentQuantity(movements))
	assert.True(t, stock.CurrentWeight(movements).Equal(decimal.RequireFromString("175")),
		"le poids doit être la somme signée des lignes")
}

// Un poids absent compte pour zéro dans la somme.
func TestLedger_PoidsAbsent(t *testing.T) {
	movements := []entity.StockMovement{
		{Type: entity.MovementTypeIn, Quantity: 10, Weight: w("12.3")},
		{Type: entity.MovementTypeIn, Quantity: 5}, // pas de poids
	}
	assert.Equal(t, 15, stock.CurrentQuantity(movements))
	assert.True(t, stock.CurrentWeight(movements).Equal(decimal.RequireFromString("12.3")))
}

// Commutativité : toute permutation du journal donne le même solde.
func TestLedger_Commutativite(t *testing.T) {
	movements := []entity.StockMovement{
		{Quantity: 100, Weight: w("10")},
		{Quantity: -40, Weight: w("-4")},
		{Quantity: 25, Weight: w("2.5")},
		{Quantity: -5},
		{Quantity: 60, Weight: w("6")},
	}
	wantQty := stock.CurrentQuantity(movements)
	wantWeight := stock.CurrentWeight(movements)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]entity.StockMovement, len(movements))
		copy(shuffled, movements)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, wantQty, stock.CurrentQuantity(shuffled))
		assert.True(t, wantWeight.Equal(stock.CurrentWeight(shuffled)),
			"le solde de poids ne doit pas dépendre de l'ordre")
	}
}

// Idempotence : réinvoquer sur la même liste donne le même résultat.
func TestLedger_Idempotence(t *testing.T) {
	movements := []entity.StockMovement{{Quantity: 7}, {Quantity: -3}}
	first := stock.CurrentQuantity(movements)
	assert.Equal(t, first, stock.CurrentQuantity(movements))
	assert.Equal(t, 4, first)
}

// Seuil de réassort : strictement inférieur, jamais égal.
func TestLedger_SeuilStrict(t *testing.T) {
	level := 50
	item := &entity.Item{ReorderLevel: &level}

	atLevel := []entity.StockMovement{{Quantity: 50}}
	below := []entity.StockMovement{{Quantity: 49}}

	assert.False(t, stock.IsLowStock(item, atLevel), "quantité == seuil n'est pas un stock bas")
	assert.True(t, stock.IsLowStock(item, below), "quantité < seuil est un stock bas")
}

// Sans seuil défini, jamais de stock bas même à zéro.
func TestLedger_SansSeuil(t *testing.T) {
	item := &entity.Item{}
	assert.False(t, stock.IsLowStock(item, nil))
	assert.False(t, stock.IsLowStock(nil, nil))
}

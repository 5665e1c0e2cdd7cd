package stock_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	appstock "github.com/tdiallo/papistock-api/internal/application/stock"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type batchFixture struct {
	db       *sqlite.DB
	uc       *appstock.BatchUseCase
	itemRepo *sqlite.ItemRepo
	movRepo  *sqlite.MovementRepo
	txRepo   *sqlite.TransactionRepo
	item     *entity.Item
}

func newBatchFixture(t *testing.T) *batchFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sqlite.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	itemRepo := sqlite.NewItemRepository(db)
	movRepo := sqlite.NewMovementRepository(db)
	txRepo := sqlite.NewTransactionRepository(db)
	uc := appstock.NewBatchUseCase(sqlite.NewTxRunner(db), txRepo, itemRepo)

	item := &entity.Item{
		Name:     "Kraft écru 120",
		SKU:      "KR-120-90",
		Laise:    120,
		Grammage: decimal.NewFromInt(90),
	}
	require.NoError(t, itemRepo.Create(item))

	return &batchFixture{db: db, uc: uc, itemRepo: itemRepo, movRepo: movRepo, txRepo: txRepo, item: item}
}

func weight(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Création de lots : signes et atomicité
// ──────────────────────────────────────────────────────────────────────────────

func TestBatch_Reception_LignesPositives(t *testing.T) {
	f := newBatchFixture(t)

	batch, err := f.uc.CreateReception(context.Background(), dto.CreateBatchRequest{
		Lines: []dto.BatchLine{
			{ItemID: f.item.ID, Quantity: 40, Weight: weight("820.5")},
			{ItemID: f.item.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, batch)

	assert.Equal(t, entity.TransactionTypeReception, batch.Type)
	assert.Len(t, batch.Reference, 8, "la référence est un code court généré")
	require.Len(t, batch.StockMovements, 2)
	for _, m := range batch.StockMovements {
		assert.Equal(t, entity.MovementTypeIn, m.Type)
		assert.Positive(t, m.Quantity, "une ligne de réception est stockée positive")
	}
}

func TestBatch_Consommation_LignesNegativees(t *testing.T) {
	f := newBatchFixture(t)

	batch, err := f.uc.CreateConsumption(context.Background(), dto.CreateBatchRequest{
		Lines: []dto.BatchLine{
			{ItemID: f.item.ID, Quantity: 15, Weight: weight("310")},
		},
	})
	require.NoError(t, err)
	require.Len(t, batch.StockMovements, 1)

	line := batch.StockMovements[0]
	assert.Equal(t, entity.MovementTypeOut, line.Type)
	assert.Equal(t, -15, line.Quantity, "la saisie positive est négativée à l'écriture")
	require.NotNil(t, line.Weight)
	assert.True(t, line.Weight.Equal(decimal.RequireFromString("-310")),
		"le poids suit le signe de la quantité")
}

// La moindre ligne invalide fait échouer le lot entier : ni l'en-tête ni
// aucune ligne ne doivent être persistés.
func TestBatch_LigneInvalide_RienNestPersiste(t *testing.T) {
	f := newBatchFixture(t)

	_, err := f.uc.CreateReception(context.Background(), dto.CreateBatchRequest{
		Lines: []dto.BatchLine{
			{ItemID: f.item.ID, Quantity: 40},
			{ItemID: f.item.ID, Quantity: 10},
			{ItemID: f.item.ID, Quantity: 25},
			{ItemID: 999999, Quantity: 5}, // article inexistant
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	batches, err := f.txRepo.List()
	require.NoError(t, err)
	assert.Empty(t, batches, "aucun en-tête ne doit survivre au rollback")

	lines, err := f.movRepo.List()
	require.NoError(t, err)
	assert.Empty(t, lines, "aucune ligne ne doit survivre au rollback")
}

func TestBatch_QuantiteNulle_Refusee(t *testing.T) {
	f := newBatchFixture(t)

	_, err := f.uc.CreateReception(context.Background(), dto.CreateBatchRequest{
		Lines: []dto.BatchLine{{ItemID: f.item.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBatch_SansLigne_Refuse(t *testing.T) {
	f := newBatchFixture(t)

	_, err := f.uc.CreateConsumption(context.Background(), dto.CreateBatchRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Réconciliation à trois voies des lignes d'un lot existant
// ──────────────────────────────────────────────────────────────────────────────

func TestBatch_UpdateLines_MiseAJourCreationSuppression(t *testing.T) {
	f := newBatchFixture(t)
	ctx := context.Background()

	batch, err := f.uc.CreateReception(ctx, dto.CreateBatchRequest{
		Lines: []dto.BatchLine{
			{ItemID: f.item.ID, Quantity: 40, Notes: "A"},
			{ItemID: f.item.ID, Quantity: 10, Notes: "B"},
		},
	})
	require.NoError(t, err)
	require.Len(t, batch.StockMovements, 2)

	var lineA, lineB entity.StockMovement
	for _, m := range batch.StockMovements {
		switch m.Notes {
		case "A":
			lineA = m
		case "B":
			lineB = m
		}
	}
	require.NotZero(t, lineA.ID)
	require.NotZero(t, lineB.ID)

	// A modifiée en place, B absente donc supprimée, C nouvelle donc créée.
	updated, err := f.uc.UpdateLines(ctx, batch.ID, dto.UpdateBatchLinesRequest{
		Lines: []dto.BatchLine{
			{ID: &lineA.ID, ItemID: f.item.ID, Quantity: 45, Notes: "A"},
			{ItemID: f.item.ID, Quantity: 7, Notes: "C"},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.StockMovements, 2)

	byNotes := map[string]entity.StockMovement{}
	for _, m := range updated.StockMovements {
		byNotes[m.Notes] = m
	}

	gotA, ok := byNotes["A"]
	require.True(t, ok)
	assert.Equal(t, lineA.ID, gotA.ID, "l'ID d'une ligne mise à jour reste stable")
	assert.Equal(t, 45, gotA.Quantity)

	_, stillB := byNotes["B"]
	assert.False(t, stillB, "une ligne absente de la nouvelle liste est supprimée")

	gotC, ok := byNotes["C"]
	require.True(t, ok)
	assert.NotZero(t, gotC.ID)
	assert.Equal(t, 7, gotC.Quantity)
}

func TestBatch_UpdateLines_IDEtranger_Conflit(t *testing.T) {
	f := newBatchFixture(t)
	ctx := context.Background()

	batch, err := f.uc.CreateReception(ctx, dto.CreateBatchRequest{
		Lines: []dto.BatchLine{{ItemID: f.item.ID, Quantity: 40}},
	})
	require.NoError(t, err)

	foreign := uint(777777)
	_, err = f.uc.UpdateLines(ctx, batch.ID, dto.UpdateBatchLinesRequest{
		Lines: []dto.BatchLine{{ID: &foreign, ItemID: f.item.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un ID qui n'appartient pas au lot est un conflit, pas une création")
}

func TestBatch_UpdateLines_LotInconnu_NotFound(t *testing.T) {
	f := newBatchFixture(t)

	_, err := f.uc.UpdateLines(context.Background(), 4242, dto.UpdateBatchLinesRequest{
		Lines: []dto.BatchLine{{ItemID: f.item.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Suppression d'un lot
// ──────────────────────────────────────────────────────────────────────────────

func TestBatch_Delete_EmporteSesLignes(t *testing.T) {
	f := newBatchFixture(t)
	ctx := context.Background()

	batch, err := f.uc.CreateConsumption(ctx, dto.CreateBatchRequest{
		Lines: []dto.BatchLine{
			{ItemID: f.item.ID, Quantity: 5},
			{ItemID: f.item.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(batch.ID))

	lines, err := f.movRepo.ListByTransaction(batch.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

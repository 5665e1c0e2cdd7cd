package sqlite_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestDB ouvre une base en mémoire isolée (nom unique pour que les tests
// ne partagent pas leur cache) avec le schéma migré.
func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sqlite.Open(dsn)
	require.NoError(t, err, "la base en mémoire doit s'ouvrir et se migrer")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newItem(sku string) *entity.Item {
	return &entity.Item{
		Name:     "Kraft écru " + sku,
		SKU:      sku,
		Laise:    120,
		Grammage: decimal.NewFromInt(90),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Items : unicité du SKU, absence, suppression restreinte
// ──────────────────────────────────────────────────────────────────────────────

func TestItemRepository_SKUEnDouble_Refuse(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewItemRepository(db)

	require.NoError(t, repo.Create(newItem("KR-120-90")))

	err := repo.Create(newItem("KR-120-90"))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU,
		"un second article avec le même SKU doit être refusé")
}

func TestItemRepository_IDInconnu_RenvoieNilSansErreur(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewItemRepository(db)

	it, err := repo.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, it, "un ID inconnu renvoie nil, pas une erreur")
}

func TestItemRepository_RechercheParSKUEtNom(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewItemRepository(db)

	created := newItem("TL-140-115")
	require.NoError(t, repo.Create(created))

	bySKU, err := repo.GetBySKU("TL-140-115")
	require.NoError(t, err)
	require.NotNil(t, bySKU)
	assert.Equal(t, created.ID, bySKU.ID)

	byName, err := repo.GetByName(created.Name)
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)
}

func TestItemRepository_SuppressionAvecMouvements_Refusee(t *testing.T) {
	db := newTestDB(t)
	itemRepo := sqlite.NewItemRepository(db)
	movRepo := sqlite.NewMovementRepository(db)

	it := newItem("GC-90-250")
	require.NoError(t, itemRepo.Create(it))
	require.NoError(t, movRepo.Create(&entity.StockMovement{
		ItemID:   it.ID,
		Type:     entity.MovementTypeIn,
		Quantity: 10,
		Date:     time.Now(),
	}))

	err := itemRepo.Delete(it.ID)
	assert.ErrorIs(t, err, domain.ErrReferenced,
		"un article avec des lignes de journal ne se supprime pas")

	kept, err := itemRepo.GetByID(it.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept, "l'article doit toujours exister après le refus")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mouvements : intégrité référentielle
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementRepository_ArticleInexistant_Refuse(t *testing.T) {
	db := newTestDB(t)
	movRepo := sqlite.NewMovementRepository(db)

	err := movRepo.Create(&entity.StockMovement{
		ItemID:   424242,
		Type:     entity.MovementTypeIn,
		Quantity: 5,
		Date:     time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"une ligne de journal ne peut pas viser un article absent")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transactions : la suppression d'un lot emporte ses lignes (cascade),
// contrairement à toutes les autres références qui sont restreintes.
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionRepository_SuppressionCascadeSurLesLignes(t *testing.T) {
	db := newTestDB(t)
	itemRepo := sqlite.NewItemRepository(db)
	movRepo := sqlite.NewMovementRepository(db)
	txRepo := sqlite.NewTransactionRepository(db)

	it := newItem("KR-160-90")
	require.NoError(t, itemRepo.Create(it))

	batch := &entity.Transaction{
		Type:      entity.TransactionTypeReception,
		Reference: "ABCD1234",
		Date:      time.Now(),
	}
	require.NoError(t, txRepo.Create(batch))

	for i := 0; i < 3; i++ {
		require.NoError(t, movRepo.Create(&entity.StockMovement{
			ItemID:        it.ID,
			Type:          entity.MovementTypeIn,
			Quantity:      10 + i,
			Date:          batch.Date,
			TransactionID: &batch.ID,
		}))
	}

	require.NoError(t, txRepo.Delete(batch.ID))

	gone, err := txRepo.GetByID(batch.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	lines, err := movRepo.ListByTransaction(batch.ID)
	require.NoError(t, err)
	assert.Empty(t, lines, "les lignes du lot doivent partir avec lui")

	// L'article, lui, survit toujours.
	kept, err := itemRepo.GetByID(it.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

// ──────────────────────────────────────────────────────────────────────────────
// Références restreintes : fournisseur, emplacement, type
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierRepository_SuppressionReferencee_Refusee(t *testing.T) {
	db := newTestDB(t)
	supplierRepo := sqlite.NewSupplierRepository(db)
	itemRepo := sqlite.NewItemRepository(db)

	s := &entity.Supplier{Name: "Papeteries du Rhin"}
	require.NoError(t, supplierRepo.Create(s))

	it := newItem("KR-120-115")
	it.SupplierID = &s.ID
	require.NoError(t, itemRepo.Create(it))

	assert.ErrorIs(t, supplierRepo.Delete(s.ID), domain.ErrReferenced)
}

func TestUserRepository_EmailEnDouble_Refuse(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	require.NoError(t, repo.Create(&entity.User{
		Name: "Thierno", Role: entity.RoleAdmin,
		Email: "thierno@papistock.fr", PasswordHash: "x",
	}))

	err := repo.Create(&entity.User{
		Name: "Autre", Role: entity.RoleStaff,
		Email: "thierno@papistock.fr", PasswordHash: "y",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

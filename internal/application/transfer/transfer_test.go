package transfer_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/application/transfer"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/infrastructure/sqlite"
	"github.com/tdiallo/papistock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type transferFixture struct {
	db       *sqlite.DB
	itemRepo *sqlite.ItemRepo
	movRepo  *sqlite.MovementRepo
	exportUC *transfer.ExportUseCase
	importUC *transfer.ImportUseCase
}

func newTransferFixture(t *testing.T) *transferFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sqlite.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	itemRepo := sqlite.NewItemRepository(db)
	supplierRepo := sqlite.NewSupplierRepository(db)
	locationRepo := sqlite.NewLocationRepository(db)
	typeRepo := sqlite.NewTypeRepository(db)
	movRepo := sqlite.NewMovementRepository(db)
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	return &transferFixture{
		db:       db,
		itemRepo: itemRepo,
		movRepo:  movRepo,
		exportUC: transfer.NewExportUseCase(itemRepo, supplierRepo, locationRepo, typeRepo, movRepo, log),
		importUC: transfer.NewImportUseCase(itemRepo, supplierRepo, locationRepo, typeRepo, movRepo, log),
	}
}

func seedItem(t *testing.T, f *transferFixture, name, sku string) *entity.Item {
	t.Helper()
	it := &entity.Item{
		Name:     name,
		SKU:      sku,
		Laise:    120,
		Grammage: decimal.NewFromInt(90),
	}
	require.NoError(t, f.itemRepo.Create(it))
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// Aller-retour : exporter des articles puis les réimporter dans un magasin
// vierge reproduit l'ensemble, aux identifiants régénérés près.
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_AllerRetourJSON_Articles(t *testing.T) {
	src := newTransferFixture(t)
	seedItem(t, src, "Kraft écru 120", "KR-120-90")
	seedItem(t, src, "Testliner brun 140", "TL-140-115")
	seedItem(t, src, "Gris carton 90", "GC-90-250")

	path := filepath.Join(t.TempDir(), "articles.json")
	require.NoError(t, src.exportUC.Export(dto.ExportRequest{
		Table: "items", Format: "json", Path: path,
	}))

	dst := newTransferFixture(t)
	summary, err := dst.importUC.Import(dto.ImportRequest{
		Table: "items", Format: "json", Path: path,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Imported)
	assert.Empty(t, summary.Skipped)

	imported, err := dst.itemRepo.List()
	require.NoError(t, err)
	require.Len(t, imported, 3)

	bySKU := map[string]*entity.Item{}
	for _, it := range imported {
		bySKU[it.SKU] = it
	}
	kraft, ok := bySKU["KR-120-90"]
	require.True(t, ok)
	assert.Equal(t, "Kraft écru 120", kraft.Name)
	assert.Equal(t, float64(120), kraft.Laise)
	assert.True(t, kraft.Grammage.Equal(decimal.NewFromInt(90)))
}

func TestTransfer_AllerRetourCSV_Mouvements(t *testing.T) {
	src := newTransferFixture(t)
	it := seedItem(t, src, "Kraft écru 120", "KR-120-90")
	w := decimal.RequireFromString("-120.5")
	require.NoError(t, src.movRepo.Create(&entity.StockMovement{
		ItemID: it.ID, Type: entity.MovementTypeIn, Quantity: 40,
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, src.movRepo.Create(&entity.StockMovement{
		ItemID: it.ID, Type: entity.MovementTypeOut, Quantity: -6, Weight: &w,
		Date: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	}))

	path := filepath.Join(t.TempDir(), "mouvements.csv")
	require.NoError(t, src.exportUC.Export(dto.ExportRequest{
		Table: "movements", Format: "csv", Path: path,
	}))

	// Le magasin de destination doit connaître l'article : la résolution se
	// fait par SKU, pas par ID.
	dst := newTransferFixture(t)
	seedItem(t, dst, "Kraft écru 120", "KR-120-90")

	summary, err := dst.importUC.Import(dto.ImportRequest{
		Table: "movements", Format: "csv", Path: path,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)

	lines, err := dst.movRepo.List()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	total := 0
	for _, m := range lines {
		total += m.Quantity
	}
	assert.Equal(t, 34, total, "les signes du journal survivent à l'aller-retour")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lignes ignorées : l'import continue et le résumé rend l'échec observable
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_Import_LignesInvalidesIgnorees(t *testing.T) {
	f := newTransferFixture(t)
	seedItem(t, f, "Kraft écru 120", "KR-120-90")

	path := filepath.Join(t.TempDir(), "mouvements.csv")
	csv := "Article,SKU,Type,Quantite,Poid,Date,Notes\n" + // en-têtes sans accents : acceptés
		"Kraft écru 120,KR-120-90,IN,40,,2026-03-10,ok\n" +
		"Inconnu,ZZ-000-00,IN,10,,2026-03-10,article absent\n" +
		"Kraft écru 120,KR-120-90,IN,pas-un-nombre,,2026-03-10,quantité illisible\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	summary, err := f.importUC.Import(dto.ImportRequest{
		Table: "stockmovement", Format: "csv", Path: path,
	})
	require.NoError(t, err, "des lignes invalides n'interrompent pas l'import")

	assert.Equal(t, 1, summary.Imported)
	require.Len(t, summary.Skipped, 2)
	assert.Equal(t, 2, summary.Skipped[0].Row)
	assert.NotEmpty(t, summary.Skipped[0].Reason)
	assert.Equal(t, 3, summary.Skipped[1].Row)
}

func TestTransfer_Import_SKUEnDouble_Ignore(t *testing.T) {
	f := newTransferFixture(t)
	seedItem(t, f, "Kraft écru 120", "KR-120-90")

	path := filepath.Join(t.TempDir(), "articles.csv")
	csv := "Article,SKU,Laise,Grammage\n" +
		"Copie,KR-120-90,120,90\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	summary, err := f.importUC.Import(dto.ImportRequest{
		Table: "items", Format: "csv", Path: path,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Imported)
	require.Len(t, summary.Skipped, 1)
	assert.Contains(t, summary.Skipped[0].Reason, "KR-120-90")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tables et formats inconnus
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_TableInconnue_Refusee(t *testing.T) {
	f := newTransferFixture(t)

	err := f.exportUC.Export(dto.ExportRequest{Table: "clients", Format: "csv", Path: "x.csv"})
	assert.ErrorIs(t, err, domain.ErrUnknownTable)

	_, err = f.importUC.Import(dto.ImportRequest{Table: "clients", Format: "csv", Path: "x.csv"})
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
}

func TestTransfer_FormatInconnu_Refuse(t *testing.T) {
	f := newTransferFixture(t)

	err := f.exportUC.Export(dto.ExportRequest{Table: "items", Format: "xml", Path: "x.xml"})
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sauvegarde : copie fidèle du fichier de base
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_Backup_CopieLeFichier(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "db.sqlite")
	db, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := transfer.NewBackupUseCase(db.Path(), log)

	dest := filepath.Join(dir, "sauvegarde.sqlite")
	out, err := uc.Backup(dto.BackupRequest{Path: dest})
	require.NoError(t, err)

	assert.Equal(t, dest, out.Path)
	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), out.Size)

	original, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	copied, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, original, copied, "la sauvegarde est la copie octet à octet du fichier")
}

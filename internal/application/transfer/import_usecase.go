package transfer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
	"github.com/tdiallo/papistock-api/internal/infrastructure/xlsx"
	"github.com/tdiallo/papistock-api/pkg/logger"
)

// ImportUseCase charge un fichier plat dans une table. Les lignes invalides
// sont ignorées une à une : l'import ne s'interrompt jamais au milieu, et le
// résumé rend l'échec partiel observable (lignes importées / ignorées).
type ImportUseCase struct {
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	locations repository.LocationRepository
	types     repository.TypeRepository
	movements repository.MovementRepository
	log       *logger.Logger
}

// NewImportUseCase construit le cas d'usage.
func NewImportUseCase(
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	locations repository.LocationRepository,
	types repository.TypeRepository,
	movements repository.MovementRepository,
	log *logger.Logger,
) *ImportUseCase {
	return &ImportUseCase{items: items, suppliers: suppliers, locations: locations, types: types, movements: movements, log: log}
}

// Import lit le fichier et insère ligne à ligne. Les identifiants du fichier
// source ne sont jamais réutilisés : le magasin régénère les siens.
func (uc *ImportUseCase) Import(in dto.ImportRequest) (*dto.ImportSummary, error) {
	table, err := normalizeTable(in.Table)
	if err != nil {
		return nil, err
	}
	format, err := normalizeFormat(in.Format)
	if err != nil {
		return nil, err
	}

	headers, rows, err := readRows(format, in.Path)
	if err != nil {
		return nil, err
	}

	summary := &dto.ImportSummary{Table: table}
	for i, row := range rows {
		rec := makeRecord(headers, row)
		if err := uc.importRecord(table, rec); err != nil {
			summary.Skipped = append(summary.Skipped, dto.SkippedRow{Row: i + 1, Reason: err.Error()})
			uc.log.Warn().
				Str("table", table).
				Int("row", i+1).
				Err(err).
				Msg("ligne d'import ignorée")
			continue
		}
		summary.Imported++
	}

	uc.log.Info().
		Str("table", table).
		Int("imported", summary.Imported).
		Int("skipped", len(summary.Skipped)).
		Msg("import terminé")
	return summary, nil
}

// readRows lit le fichier selon son format et renvoie en-têtes + lignes.
func readRows(format, path string) (headers []string, rows [][]string, err error) {
	switch format {
	case FormatCSV:
		return readCSV(path)
	case FormatJSON:
		return readJSON(path)
	default:
		return xlsx.ReadTable(path)
	}
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("import csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // lignes hétérogènes tolérées, complétées plus bas
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("import csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

// readJSON accepte un tableau d'objets ; les clés des objets tiennent lieu
// d'en-têtes (repliées ensuite comme celles du CSV).
func readJSON(path string) ([]string, [][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("import json: %w", err)
	}

	var objects []map[string]any
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, nil, fmt.Errorf("import json: %w", err)
	}

	// Collecte des clés dans l'ordre de première apparition.
	var headers []string
	seen := map[string]bool{}
	for _, obj := range objects {
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}

	rows := make([][]string, 0, len(objects))
	for _, obj := range objects {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = stringifyJSON(obj[h])
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func stringifyJSON(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func (uc *ImportUseCase) importRecord(table string, rec record) error {
	switch table {
	case TableItem:
		return uc.importItem(rec)
	case TableSupplier:
		return uc.importSupplier(rec)
	case TableLocation:
		return uc.importLocation(rec)
	case TableType:
		return uc.importType(rec)
	default:
		return uc.importMovement(rec)
	}
}

func (uc *ImportUseCase) importItem(rec record) error {
	name := rec.get("article", "nom", "name")
	sku := rec.get("sku")
	if name == "" || sku == "" {
		return errors.New("article et SKU requis")
	}

	laise := 0.0
	if s := rec.get("laise"); s != "" {
		v, err := strconv.ParseFloat(normalizeNumber(s), 64)
		if err != nil {
			return errors.New("laise invalide")
		}
		laise = v
	}
	grammage, err := parseOptionalDecimal(rec.get("grammage"))
	if err != nil {
		return errors.New("grammage invalide")
	}
	seuil, err := parseOptionalInt(rec.get("seuil", "reorder_level"))
	if err != nil {
		return errors.New("seuil invalide")
	}

	item := &entity.Item{
		Name:         name,
		Description:  rec.get("description"),
		SKU:          sku,
		Laise:        laise,
		ReorderLevel: seuil,
	}
	if grammage != nil {
		item.Grammage = *grammage
	}

	if err := uc.items.Create(item); err != nil {
		if errors.Is(err, domain.ErrDuplicateSKU) {
			return fmt.Errorf("SKU déjà présent: %s", sku)
		}
		return err
	}
	return nil
}

func (uc *ImportUseCase) importSupplier(rec record) error {
	name := rec.get("nom", "name")
	if name == "" {
		return errors.New("nom requis")
	}
	return uc.suppliers.Create(&entity.Supplier{
		Name:      name,
		ShortName: rec.get("abreviation", "short_name"),
		Origin:    rec.get("origine", "origin"),
	})
}

func (uc *ImportUseCase) importLocation(rec record) error {
	name := rec.get("nom", "name")
	if name == "" {
		return errors.New("nom requis")
	}
	return uc.locations.Create(&entity.Location{
		Name:        name,
		Description: rec.get("description"),
	})
}

func (uc *ImportUseCase) importType(rec record) error {
	name := rec.get("nom", "name")
	if name == "" {
		return errors.New("nom requis")
	}
	return uc.types.Create(&entity.MaterialType{
		Name:        name,
		ShortName:   rec.get("abreviation", "short_name"),
		Description: rec.get("description"),
	})
}

// importMovement résout l'article par SKU d'abord, puis par nom. Les valeurs
// sont réécrites signées selon le sens : une ligne OUT saisie positive est
// négativée, une ligne IN saisie négative est rejetée.
func (uc *ImportUseCase) importMovement(rec record) error {
	item, err := uc.resolveItem(rec)
	if err != nil {
		return err
	}

	qtyStr := rec.get("quantite", "quantity")
	if qtyStr == "" {
		return errors.New("quantité requise")
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty == 0 {
		return errors.New("quantité invalide")
	}
	weight, err := parseOptionalDecimal(rec.get("poid", "poids", "weight"))
	if err != nil {
		return errors.New("poids invalide")
	}

	movType := rec.get("type")
	switch movType {
	case "":
		// Sens déduit du signe quand la colonne manque.
		movType = entity.MovementTypeIn
		if qty < 0 {
			movType = entity.MovementTypeOut
		}
	case entity.MovementTypeIn:
		if qty < 0 {
			return errors.New("mouvement IN avec quantité négative")
		}
	case entity.MovementTypeOut:
		if qty > 0 {
			qty = -qty
			if weight != nil {
				neg := weight.Neg()
				weight = &neg
			}
		}
	default:
		return fmt.Errorf("type de mouvement inconnu: %s", movType)
	}

	date := time.Now()
	if s := rec.get("date"); s != "" {
		parsed, err := parseDate(s)
		if err != nil {
			return errors.New("date invalide")
		}
		date = parsed
	}

	return uc.movements.Create(&entity.StockMovement{
		ItemID:   item.ID,
		Type:     movType,
		Quantity: qty,
		Weight:   weight,
		Date:     date,
		Notes:    rec.get("notes"),
	})
}

func (uc *ImportUseCase) resolveItem(rec record) (*entity.Item, error) {
	if sku := rec.get("sku"); sku != "" {
		item, err := uc.items.GetBySKU(sku)
		if err != nil {
			return nil, err
		}
		if item != nil {
			return item, nil
		}
	}
	if name := rec.get("article", "nom", "name"); name != "" {
		item, err := uc.items.GetByName(name)
		if err != nil {
			return nil, err
		}
		if item != nil {
			return item, nil
		}
	}
	return nil, errors.New("article introuvable (SKU puis nom)")
}

package transfer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
	"github.com/tdiallo/papistock-api/internal/infrastructure/xlsx"
	"github.com/tdiallo/papistock-api/pkg/logger"
)

// ExportUseCase met à plat une table vers un fichier CSV, JSON ou XLSX.
// Les relations ne sont jamais exportées : chaque ligne est autonome.
type ExportUseCase struct {
	items     repository.ItemRepository
	suppliers repository.SupplierRepository
	locations repository.LocationRepository
	types     repository.TypeRepository
	movements repository.MovementRepository
	log       *logger.Logger
}

// NewExportUseCase construit le cas d'usage.
func NewExportUseCase(
	items repository.ItemRepository,
	suppliers repository.SupplierRepository,
	locations repository.LocationRepository,
	types repository.TypeRepository,
	movements repository.MovementRepository,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{items: items, suppliers: suppliers, locations: locations, types: types, movements: movements, log: log}
}

// Export écrit la table demandée au chemin donné. Table ou format inconnus
// échouent avant toute écriture.
func (uc *ExportUseCase) Export(in dto.ExportRequest) error {
	table, err := normalizeTable(in.Table)
	if err != nil {
		return err
	}
	format, err := normalizeFormat(in.Format)
	if err != nil {
		return err
	}

	headers := tableHeaders[table]
	rows, err := uc.collect(table)
	if err != nil {
		return err
	}

	uc.log.Info().
		Str("table", table).
		Str("format", format).
		Int("rows", len(rows)).
		Str("path", in.Path).
		Msg("export de table")

	switch format {
	case FormatCSV:
		return writeCSV(in.Path, headers, rows)
	case FormatJSON:
		return writeJSON(in.Path, headers, rows)
	default:
		return xlsx.WriteTable(in.Path, sheetName(table), headers, rows)
	}
}

// collect lit la table et la met à plat.
func (uc *ExportUseCase) collect(table string) ([][]string, error) {
	var rows [][]string
	switch table {
	case TableItem:
		items, err := uc.items.List()
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			rows = append(rows, itemRow(it))
		}
	case TableSupplier:
		suppliers, err := uc.suppliers.List()
		if err != nil {
			return nil, err
		}
		for _, s := range suppliers {
			rows = append(rows, supplierRow(s))
		}
	case TableLocation:
		locations, err := uc.locations.List()
		if err != nil {
			return nil, err
		}
		for _, l := range locations {
			rows = append(rows, locationRow(l))
		}
	case TableType:
		types, err := uc.types.List()
		if err != nil {
			return nil, err
		}
		for _, t := range types {
			rows = append(rows, typeRow(t))
		}
	case TableMovement:
		movements, err := uc.movements.List()
		if err != nil {
			return nil, err
		}
		for _, m := range movements {
			rows = append(rows, movementRow(m))
		}
	}
	return rows, nil
}

func sheetName(table string) string {
	switch table {
	case TableItem:
		return "Articles"
	case TableSupplier:
		return "Fournisseurs"
	case TableLocation:
		return "Emplacements"
	case TableType:
		return "Types"
	default:
		return "Mouvements"
	}
}

func writeCSV(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	w.Flush()
	return w.Error()
}

// writeJSON écrit un tableau d'objets dont les clés sont les libellés
// d'affichage, comme l'en-tête CSV/XLSX.
func writeJSON(path string, headers []string, rows [][]string) error {
	objects := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				obj[h] = row[i]
			}
		}
		objects = append(objects, obj)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(objects); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}

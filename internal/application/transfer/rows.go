// Package transfer gère les échanges en masse : export/import de tables vers
// des fichiers plats (CSV, JSON, XLSX), remplissage de fiches tableur et
// sauvegarde du fichier de base.
package transfer

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
)

// Tables transférables et leur nom canonique.
const (
	TableItem     = "item"
	TableSupplier = "supplier"
	TableLocation = "location"
	TableType     = "type"
	TableMovement = "stockmovement"
)

// Formats de fichier pris en charge.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// tableAliases tolère les noms au pluriel et les libellés français côté client.
var tableAliases = map[string]string{
	"item": TableItem, "items": TableItem, "article": TableItem, "articles": TableItem,
	"supplier": TableSupplier, "suppliers": TableSupplier, "fournisseur": TableSupplier, "fournisseurs": TableSupplier,
	"location": TableLocation, "locations": TableLocation, "emplacement": TableLocation, "emplacements": TableLocation,
	"type": TableType, "types": TableType,
	"stockmovement": TableMovement, "stockmovements": TableMovement,
	"movement": TableMovement, "movements": TableMovement, "mouvement": TableMovement, "mouvements": TableMovement,
}

// normalizeTable résout les alias vers le nom canonique de table.
func normalizeTable(name string) (string, error) {
	canonical, ok := tableAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", domain.ErrUnknownTable
	}
	return canonical, nil
}

// normalizeFormat valide le format demandé.
func normalizeFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", domain.ErrUnknownFormat
}

// En-têtes d'export par table : libellés d'affichage français, partagés par
// les trois formats pour que l'aller-retour export→import fonctionne.
var tableHeaders = map[string][]string{
	TableItem:     {"ID", "Article", "Description", "SKU", "Laise", "Grammage", "Seuil"},
	TableSupplier: {"ID", "Nom", "Abréviation", "Origine"},
	TableLocation: {"ID", "Nom", "Description"},
	TableType:     {"ID", "Nom", "Abréviation", "Description"},
	TableMovement: {"ID", "Article", "SKU", "Type", "Quantité", "Poid", "Date", "Notes"},
}

// stripDiacritics retire les marques combinantes (é -> e).
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldHeader normalise un en-tête pour la correspondance de colonnes :
// minuscules, sans accents, sans espaces. "Quantité" et "quantite"
// désignent ainsi la même colonne.
func foldHeader(h string) string {
	folded, _, err := transform.String(stripDiacritics, h)
	if err != nil {
		folded = h
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// record est une ligne importée, indexée par en-tête replié.
type record map[string]string

func makeRecord(headers, row []string) record {
	rec := make(record, len(headers))
	for i, h := range headers {
		if i < len(row) {
			rec[foldHeader(h)] = strings.TrimSpace(row[i])
		}
	}
	return rec
}

func (r record) get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Mise à plat des entités vers des lignes de chaînes (relations exclues).

func itemRow(it *entity.Item) []string {
	seuil := ""
	if it.ReorderLevel != nil {
		seuil = strconv.Itoa(*it.ReorderLevel)
	}
	return []string{
		strconv.FormatUint(uint64(it.ID), 10),
		it.Name,
		it.Description,
		it.SKU,
		strconv.FormatFloat(it.Laise, 'f', -1, 64),
		it.Grammage.String(),
		seuil,
	}
}

func supplierRow(s *entity.Supplier) []string {
	return []string{strconv.FormatUint(uint64(s.ID), 10), s.Name, s.ShortName, s.Origin}
}

func locationRow(l *entity.Location) []string {
	return []string{strconv.FormatUint(uint64(l.ID), 10), l.Name, l.Description}
}

func typeRow(t *entity.MaterialType) []string {
	return []string{strconv.FormatUint(uint64(t.ID), 10), t.Name, t.ShortName, t.Description}
}

func movementRow(m *entity.StockMovement) []string {
	article, sku := "", ""
	if m.Item != nil {
		article, sku = m.Item.Name, m.Item.SKU
	}
	weight := ""
	if m.Weight != nil {
		weight = m.Weight.String()
	}
	return []string{
		strconv.FormatUint(uint64(m.ID), 10),
		article,
		sku,
		m.Type,
		strconv.Itoa(m.Quantity),
		weight,
		m.Date.Format(time.RFC3339),
		m.Notes,
	}
}

// dateLayouts formats de date acceptés à l'import, du plus précis au plus lâche.
var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02", "02/01/2006"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidInput
}

func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &n, nil
}

func parseOptionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(normalizeNumber(s))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}

// normalizeNumber accepte la virgule décimale française.
func normalizeNumber(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

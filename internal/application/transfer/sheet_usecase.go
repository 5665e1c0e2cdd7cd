package transfer

import (
	"strconv"
	"time"

	"github.com/tdiallo/papistock-api/internal/domain"
	"github.com/tdiallo/papistock-api/internal/domain/repository"
	domstock "github.com/tdiallo/papistock-api/internal/domain/stock"
	"github.com/tdiallo/papistock-api/internal/infrastructure/xlsx"
)

// Gabarits de fiche tableur.
const (
	SheetStock     = "stock"      // fiche de stock : soldes dérivés par article
	SheetMovements = "mouvements" // journal des mouvements
)

// SheetUseCase remplit une fiche tableur à partir d'un gabarit nommé. La
// fiche de stock diffère de l'export de table : elle porte les soldes dérivés
// du journal, pas les colonnes brutes.
type SheetUseCase struct {
	items     repository.ItemRepository
	movements repository.MovementRepository
}

// NewSheetUseCase construit le cas d'usage.
func NewSheetUseCase(items repository.ItemRepository, movements repository.MovementRepository) *SheetUseCase {
	return &SheetUseCase{items: items, movements: movements}
}

// Fill génère la fiche demandée au chemin donné. Gabarit inconnu : erreur.
func (uc *SheetUseCase) Fill(template, path string) error {
	switch template {
	case SheetStock:
		return uc.fillStock(path)
	case SheetMovements:
		return uc.fillMovements(path)
	default:
		return domain.ErrUnknownFormat
	}
}

func (uc *SheetUseCase) fillStock(path string) error {
	items, err := uc.items.List()
	if err != nil {
		return err
	}

	headers := []string{"Article", "SKU", "Laise", "Grammage", "Quantité", "Poid", "Sous seuil"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		low := ""
		if domstock.IsLowStock(it, it.StockMovements) {
			low = "OUI"
		}
		rows = append(rows, []string{
			it.Name,
			it.SKU,
			strconv.FormatFloat(it.Laise, 'f', -1, 64),
			it.Grammage.String(),
			strconv.Itoa(domstock.CurrentQuantity(it.StockMovements)),
			domstock.CurrentWeight(it.StockMovements).String(),
			low,
		})
	}
	return xlsx.WriteTable(path, "Fiche de stock", headers, rows)
}

func (uc *SheetUseCase) fillMovements(path string) error {
	movements, err := uc.movements.List()
	if err != nil {
		return err
	}

	headers := []string{"Date", "Article", "SKU", "Type", "Quantité", "Poid", "Notes"}
	rows := make([][]string, 0, len(movements))
	for _, m := range movements {
		article, sku := "", ""
		if m.Item != nil {
			article, sku = m.Item.Name, m.Item.SKU
		}
		weight := ""
		if m.Weight != nil {
			weight = m.Weight.String()
		}
		rows = append(rows, []string{
			m.Date.Format(time.RFC3339),
			article,
			sku,
			m.Type,
			strconv.Itoa(m.Quantity),
			weight,
			m.Notes,
		})
	}
	return xlsx.WriteTable(path, "Journal des mouvements", headers, rows)
}

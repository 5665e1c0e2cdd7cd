// Package documents génère les documents imprimables : fiche de stock et
// journal des mouvements.
package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tdiallo/papistock-api/internal/domain/repository"
	domstock "github.com/tdiallo/papistock-api/internal/domain/stock"
)

// StockLine ligne de la fiche de stock : un article avec ses soldes dérivés.
type StockLine struct {
	Name     string
	SKU      string
	Laise    float64
	Grammage decimal.Decimal
	Quantity int
	Weight   decimal.Decimal
	LowStock bool
}

// JournalLine ligne du journal des mouvements (valeurs signées telles
// qu'écrites dans le journal).
type JournalLine struct {
	Date     time.Time
	Article  string
	SKU      string
	Type     string
	Quantity int
	Weight   *decimal.Decimal
	Notes    string
}

// StockPDFGenerator port de génération ; l'implémentation Maroto vit dans
// internal/infrastructure/pdf.
type StockPDFGenerator interface {
	GenerateStockSheet(ctx context.Context, lines []StockLine) ([]byte, error)
	GenerateMovementJournal(ctx context.Context, lines []JournalLine) ([]byte, error)
}

// PDFUseCase assemble les données puis délègue la mise en page au générateur.
type PDFUseCase struct {
	items     repository.ItemRepository
	movements repository.MovementRepository
	generator StockPDFGenerator
}

// NewPDFUseCase construit le cas d'usage en injectant ses dépendances.
func NewPDFUseCase(items repository.ItemRepository, movements repository.MovementRepository, generator StockPDFGenerator) *PDFUseCase {
	return &PDFUseCase{items: items, movements: movements, generator: generator}
}

// StockSheet génère la fiche de stock : un article par ligne, quantité et
// poids recalculés depuis le journal à la génération.
func (uc *PDFUseCase) StockSheet(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	items, err := uc.items.List()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger les articles: %w", err)
	}

	lines := make([]StockLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, StockLine{
			Name:     it.Name,
			SKU:      it.SKU,
			Laise:    it.Laise,
			Grammage: it.Grammage,
			Quantity: domstock.CurrentQuantity(it.StockMovements),
			Weight:   domstock.CurrentWeight(it.StockMovements),
			LowStock: domstock.IsLowStock(it, it.StockMovements),
		})
	}

	pdfBytes, err = uc.generator.GenerateStockSheet(ctx, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: génération fiche de stock: %w", err)
	}
	filename = fmt.Sprintf("fiche_stock_%s.pdf", time.Now().Format("2006-01-02"))
	return pdfBytes, filename, nil
}

// MovementJournal génère le journal des mouvements, du plus récent au plus
// ancien (ordre du repository).
func (uc *PDFUseCase) MovementJournal(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	movements, err := uc.movements.List()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: charger les mouvements: %w", err)
	}

	lines := make([]JournalLine, 0, len(movements))
	for _, m := range movements {
		line := JournalLine{
			Date:     m.Date,
			Type:     m.Type,
			Quantity: m.Quantity,
			Weight:   m.Weight,
			Notes:    m.Notes,
		}
		if m.Item != nil {
			line.Article = m.Item.Name
			line.SKU = m.Item.SKU
		}
		lines = append(lines, line)
	}

	pdfBytes, err = uc.generator.GenerateMovementJournal(ctx, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: génération journal: %w", err)
	}
	filename = fmt.Sprintf("journal_mouvements_%s.pdf", time.Now().Format("2006-01-02"))
	return pdfBytes, filename, nil
}

// Package pdf implémente la génération des documents imprimables (fiche de
// stock et journal des mouvements) avec Maroto v2.
//
// Layout de la page A4 (fiche de stock) :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Titre + date d'édition                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Article | SKU | Laise | Grammage | Quantité | Poid   │
//	│  (les lignes sous le seuil de réassort sont marquées)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totaux quantité / poids                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appdocs "github.com/tdiallo/papistock-api/internal/application/documents"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implémente documents.StockPDFGenerator avec Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construit le générateur.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// GenerateStockSheet génère la fiche de stock et renvoie ses octets.
func (g *MarotoPDFGenerator) GenerateStockSheet(_ context.Context, lines []appdocs.StockLine) ([]byte, error) {
	m := newDocument("Fiche de stock")

	m.AddRows(titleRow("FICHE DE STOCK"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(stockHeaderRow())
	totalQty := 0
	totalWeight := decimal.Zero
	for _, l := range lines {
		m.AddRows(stockLineRow(l))
		totalQty += l.Quantity
		totalWeight = totalWeight.Add(l.Weight)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(stockTotalsRow(totalQty, totalWeight))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateMovementJournal génère le journal des mouvements et renvoie ses octets.
func (g *MarotoPDFGenerator) GenerateMovementJournal(_ context.Context, lines []appdocs.JournalLine) ([]byte, error) {
	m := newDocument("Journal des mouvements")

	m.AddRows(titleRow("JOURNAL DES MOUVEMENTS"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(journalHeaderRow())
	for _, l := range lines {
		m.AddRows(journalLineRow(l))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// titleRow : titre à gauche, date d'édition à droite.
func titleRow(title string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Édité le "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func stockHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Article", 4, align.Left),
		h("SKU", 2, align.Left),
		h("Laise", 1, align.Right),
		h("Grammage", 2, align.Right),
		h("Quantité", 1, align.Right),
		h("Poid (kg)", 2, align.Right),
	)
}

// stockLineRow : une ligne par article ; les articles sous seuil en rouge.
func stockLineRow(l appdocs.StockLine) core.Row {
	color := colorGray
	if l.LowStock {
		color = colorAlert
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Color: color,
		}))
	}
	return row.New(6).Add(
		cell(l.Name, 4, align.Left),
		cell(l.SKU, 2, align.Left),
		cell(strconv.FormatFloat(l.Laise, 'f', -1, 64), 1, align.Right),
		cell(l.Grammage.String(), 2, align.Right),
		cell(strconv.Itoa(l.Quantity), 1, align.Right),
		cell(l.Weight.StringFixed(3), 2, align.Right),
	)
}

// stockTotalsRow : bloc de totaux aligné à droite.
func stockTotalsRow(totalQty int, totalWeight decimal.Decimal) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Quantité totale :"),
			label("Poids total (kg) :"),
		),
		col.New(3).Add(
			value(strconv.Itoa(totalQty)),
			value(totalWeight.StringFixed(3)),
		),
	)
}

func journalHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Article", 3, align.Left),
		h("SKU", 2, align.Left),
		h("Sens", 1, align.Center),
		h("Quantité", 1, align.Right),
		h("Poid (kg)", 1, align.Right),
		h("Notes", 2, align.Left),
	)
}

// journalLineRow : une ligne par mouvement, valeurs signées telles quelles ;
// les sorties en rouge pour une lecture rapide.
func journalLineRow(l appdocs.JournalLine) core.Row {
	color := colorGray
	if l.Type == entity.MovementTypeOut {
		color = colorAlert
	}
	weight := "—"
	if l.Weight != nil {
		weight = l.Weight.StringFixed(3)
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Color: color,
		}))
	}
	return row.New(6).Add(
		cell(l.Date.Format("02/01/2006 15:04"), 2, align.Left),
		cell(l.Article, 3, align.Left),
		cell(l.SKU, 2, align.Left),
		cell(l.Type, 1, align.Center),
		cell(strconv.Itoa(l.Quantity), 1, align.Right),
		cell(weight, 1, align.Right),
		cell(l.Notes, 2, align.Left),
	)
}

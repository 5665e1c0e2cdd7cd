package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/documents"
)

// DocumentsHandler sert les documents PDF (protégé). Seule exception au
// contrat d'enveloppe : la réponse de succès est le binaire du document.
type DocumentsHandler struct {
	uc *documents.PDFUseCase
}

// NewDocumentsHandler construit le handler.
func NewDocumentsHandler(uc *documents.PDFUseCase) *DocumentsHandler {
	return &DocumentsHandler{uc: uc}
}

// StockSheet godoc
// @Summary      Fiche de stock PDF (soldes dérivés, articles sous seuil marqués)
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  byte
// @Router       /api/documents/stock [get]
func (h *DocumentsHandler) StockSheet(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.StockSheet(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

// MovementJournal godoc
// @Summary      Journal des mouvements PDF
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  byte
// @Router       /api/documents/movements [get]
func (h *DocumentsHandler) MovementJournal(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.MovementJournal(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

func sendPDF(c *fiber.Ctx, pdfBytes []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	appstock "github.com/tdiallo/papistock-api/internal/application/stock"
)

// TransactionHandler gère les lots de mouvements : bons de réception et de
// consommation, avec création atomique et réconciliation des lignes.
type TransactionHandler struct {
	uc *appstock.BatchUseCase
}

// NewTransactionHandler construit le handler.
func NewTransactionHandler(uc *appstock.BatchUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// CreateReception godoc
// @Summary      Créer un bon de réception (lignes IN, atomique)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "En-tête + lignes"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope  "Une ligne invalide fait échouer le lot entier"
// @Router       /api/receptions [post]
func (h *TransactionHandler) CreateReception(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if in.UserID == nil {
		if id := GetUserID(c); id != 0 {
			in.UserID = &id
		}
	}
	out, err := h.uc.CreateReception(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// CreateConsumption godoc
// @Summary      Créer un bon de consommation (lignes OUT négativées, atomique)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "En-tête + lignes (saisie positive)"
// @Success      201   {object}  dto.Envelope
// @Router       /api/consumptions [post]
func (h *TransactionHandler) CreateConsumption(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if in.UserID == nil {
		if id := GetUserID(c); id != 0 {
			in.UserID = &id
		}
	}
	out, err := h.uc.CreateConsumption(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID renvoie un lot avec ses lignes.
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c)
	}
	return respondOK(c, out)
}

// List renvoie tous les lots.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update fusionne l'en-tête d'un lot (date, notes, fournisseur) ; les lignes
// passent par UpdateLines.
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	var in dto.UpdateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdateHeader(id, in.Date, in.Notes, in.SupplierID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// UpdateLines godoc
// @Summary      Remplacer les lignes d'un lot (réconciliation à trois voies)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID du lot"
// @Param        body  body  dto.UpdateBatchLinesRequest  true  "Nouvelle liste de lignes"
// @Success      200   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope  "Ligne portant un ID étranger au lot"
// @Router       /api/transactions/{id}/movements [put]
func (h *TransactionHandler) UpdateLines(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	var in dto.UpdateBatchLinesRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdateLines(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete supprime le lot et toutes ses lignes en cascade.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": id})
}

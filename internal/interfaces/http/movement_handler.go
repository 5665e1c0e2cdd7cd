package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	appstock "github.com/tdiallo/papistock-api/internal/application/stock"
)

// MovementHandler gère les lignes de journal isolées (protégé).
type MovementHandler struct {
	uc *appstock.MovementUseCase
}

// NewMovementHandler construit le handler.
func NewMovementHandler(uc *appstock.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create crée une ligne de journal. La saisie est positive ; le signe est
// appliqué à l'écriture selon le sens IN/OUT. L'acteur du jeton est attribué
// à la ligne si la requête n'en précise pas.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if in.UserID == nil {
		if id := GetUserID(c); id != 0 {
			in.UserID = &id
		}
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID renvoie une ligne de journal par ID.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
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

// List renvoie tout le journal, du plus récent au plus ancien.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update fusionne les champs fournis ; la quantité est re-signée selon le
// sens existant de la ligne.
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete supprime une ligne de journal ; le solde de l'article s'ajuste de
// lui-même à la prochaine lecture.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": id})
}

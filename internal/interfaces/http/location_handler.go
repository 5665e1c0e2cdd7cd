package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/application/usecase"
)

// LocationHandler gère les requêtes HTTP pour Location (protégé).
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construit le handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create crée un emplacement.
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID renvoie un emplacement par ID.
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
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

// List liste les emplacements.
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update fusionne les champs fournis.
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete supprime un emplacement (refusé s'il est référencé).
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": id})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/application/usecase"
)

// SupplierHandler gère les requêtes HTTP pour Supplier (protégé).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construit le handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un fournisseur
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Données du fournisseur"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID godoc
// @Summary      Obtenir un fournisseur par ID
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID du fournisseur"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Lister les fournisseurs
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary      Mettre à jour un fournisseur
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID du fournisseur"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Champs à fusionner"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Supprimer un fournisseur
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID du fournisseur"
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": id})
}

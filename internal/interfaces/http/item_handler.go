package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/application/usecase"
)

// ItemHandler gère les requêtes HTTP pour Item (protégé). Les réponses
// portent toujours le solde dérivé du journal, jamais un compteur stocké.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construit le handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un article
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Données de l'article"
// @Success      201   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope  "SKU déjà pris"
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// GetByID godoc
// @Summary      Obtenir un article par ID (solde dérivé inclus)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de l'article"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
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

// GetBySKU godoc
// @Summary      Obtenir un article par SKU
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU de l'article"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/items/sku/{sku} [get]
func (h *ItemHandler) GetBySKU(c *fiber.Ctx) error {
	sku := c.Params("sku")
	if sku == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("sku requis"))
	}
	out, err := h.uc.GetBySKU(sku)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c)
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Lister les articles avec leur solde dérivé
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary      Mettre à jour un article (la quantité reste dérivée)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de l'article"
// @Param        body  body  dto.UpdateItemRequest  true  "Champs à fusionner"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	var in dto.UpdateItemRequest
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
// @Summary      Supprimer un article (refusé s'il a des mouvements)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de l'article"
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id invalide"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.Map{"deleted": id})
}

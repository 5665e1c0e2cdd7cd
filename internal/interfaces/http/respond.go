// Package http expose l'API sous forme de handlers Fiber. Toute réponse
// traverse l'enveloppe uniforme {success, data | error} : une erreur de
// domaine devient un message, jamais une faute non gérée.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain"
)

// respondOK enveloppe de succès, statut 200.
func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.OK(data))
}

// respondCreated enveloppe de succès, statut 201.
func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

// respondError mappe une erreur de domaine sur un statut HTTP et une enveloppe
// d'échec. Les sentinelles portent déjà leur message ; le reste est un 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownTable),
		errors.Is(err, domain.ErrUnknownFormat):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrDuplicateSKU),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrReferenced):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(dto.Fail(err.Error()))
}

// respondNotFound absence d'enregistrement pour un ID connu du routeur.
func respondNotFound(c *fiber.Ctx) error {
	return respondError(c, domain.ErrNotFound)
}

// respondBadBody corps JSON illisible.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corps de requête invalide"))
}

// paramID lit le paramètre :id en uint ; 0 si absent ou non numérique.
func paramID(c *fiber.Ctx) uint {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0
	}
	return uint(id)
}

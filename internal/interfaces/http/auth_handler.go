package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/auth"
	"github.com/tdiallo/papistock-api/internal/application/dto"
)

// AuthHandler gère la connexion.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construit le handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Connexion par email/mot de passe
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Identifiants"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

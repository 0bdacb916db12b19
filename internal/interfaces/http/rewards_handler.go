package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cafe-sang/internal/application/dto"
	"github.com/tu-usuario/cafe-sang/internal/application/rewards"
	"github.com/tu-usuario/cafe-sang/internal/domain"
)

// RewardsHandler expone el programa de fidelidad a la vista.
type RewardsHandler struct {
	uc *rewards.UseCase
}

// NewRewardsHandler construye el handler de recompensas.
func NewRewardsHandler(uc *rewards.UseCase) *RewardsHandler {
	return &RewardsHandler{uc: uc}
}

// List godoc
// @Summary      Listar recompensas
// @Tags         rewards
// @Produce      json
// @Success      200  {array}  dto.RewardResponse
// @Router       /api/rewards [get]
func (h *RewardsHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Redeem godoc
// @Summary      Canjear una recompensa por puntos
// @Tags         rewards
// @Produce      json
// @Param        id  path  string  true  "id de la recompensa"
// @Success      200  {object}  dto.RedeemResponse
// @Failure      402  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/rewards/{id}/redeem [post]
func (h *RewardsHandler) Redeem(c *fiber.Ctx) error {
	out, err := h.uc.Redeem(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRewardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "REWARD_NOT_FOUND", Message: "la recompensa no existe"})
		case errors.Is(err, domain.ErrRewardUnavailable):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REWARD_UNAVAILABLE", Message: "la recompensa no está disponible"})
		case errors.Is(err, domain.ErrNotAuthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NOT_LOGGED_IN", Message: "no hay sesión activa"})
		case errors.Is(err, domain.ErrInsufficientPoints):
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_POINTS", Message: "puntos insuficientes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

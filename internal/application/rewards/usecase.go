package rewards

import (
	"github.com/tu-usuario/cafe-sang/internal/application/dto"
	"github.com/tu-usuario/cafe-sang/internal/application/session"
	"github.com/tu-usuario/cafe-sang/internal/domain"
	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
	"github.com/tu-usuario/cafe-sang/pkg/logger"
)

// UseCase canje de recompensas por puntos. La deducción pasa por el gestor de
// sesión, que es el único dueño del usuario actual y de su persistencia.
type UseCase struct {
	session *session.UseCase
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(sessionUC *session.UseCase, log *logger.Logger) *UseCase {
	return &UseCase{session: sessionUC, log: log}
}

// List devuelve la tabla de recompensas.
func (uc *UseCase) List() []dto.RewardResponse {
	out := make([]dto.RewardResponse, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, toRewardResponse(r))
	}
	return out
}

// Redeem canjea una recompensa: valida sesión, disponibilidad y saldo, y
// deduce los puntos vía el gestor de sesión (que re-persiste).
func (uc *UseCase) Redeem(rewardID string) (*dto.RedeemResponse, error) {
	reward, ok := findReward(rewardID)
	if !ok {
		return nil, domain.ErrRewardNotFound
	}
	if !reward.Available {
		return nil, domain.ErrRewardUnavailable
	}

	user := uc.session.Current()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if user.Points < reward.PointsRequired {
		return nil, domain.ErrInsufficientPoints
	}

	remaining := user.Points - reward.PointsRequired
	if !uc.session.UpdateUserPoints(remaining) {
		// La sesión se cerró entre la lectura y la deducción
		return nil, domain.ErrNotAuthenticated
	}
	uc.log.Info().Str("reward_id", rewardID).Int("remaining", remaining).Msg("recompensa canjeada")
	return &dto.RedeemResponse{RewardID: rewardID, RemainingPoints: remaining}, nil
}

func toRewardResponse(r entity.Reward) dto.RewardResponse {
	return dto.RewardResponse{
		ID:             r.ID,
		Name:           r.Name,
		NameEn:         r.NameEn,
		Description:    r.Description,
		DescriptionEn:  r.DescriptionEn,
		PointsRequired: r.PointsRequired,
		Image:          r.Image,
		Available:      r.Available,
	}
}

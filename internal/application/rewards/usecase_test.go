package rewards_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-sang/internal/application/rewards"
	"github.com/tu-usuario/cafe-sang/internal/application/session"
	"github.com/tu-usuario/cafe-sang/internal/domain"
	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
	"github.com/tu-usuario/cafe-sang/internal/infrastructure/localstore"
	"github.com/tu-usuario/cafe-sang/pkg/logger"
)

// neverInStore suprime la aleatoriedad del simulador de presencia.
func neverInStore() float64 { return 1.0 }

func newFixture(t *testing.T) (*rewards.UseCase, *session.UseCase, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := localstore.Open(path)
	require.NoError(t, err)
	sessionUC := session.New(store, logger.Nop(), session.Options{PresenceChance: neverInStore})
	t.Cleanup(sessionUC.Close)
	return rewards.NewUseCase(sessionUC, logger.Nop()), sessionUC, path
}

func persistedPoints(t *testing.T, path string) int {
	t.Helper()
	store, err := localstore.Open(path)
	require.NoError(t, err)
	raw, ok, err := store.Get("currentUser")
	require.NoError(t, err)
	require.True(t, ok, "debe haber sesión persistida")
	var u entity.User
	require.NoError(t, json.Unmarshal(raw, &u))
	return u.Points
}

func TestList_CatalogoCompleto(t *testing.T) {
	uc, _, _ := newFixture(t)

	list := uc.List()
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, 100, list[0].PointsRequired)
	assert.Equal(t, "Free Black Coffee", list[0].NameEn)
}

func TestRedeem_DeducePuntosYPersiste(t *testing.T) {
	uc, sessionUC, path := newFixture(t)
	require.True(t, sessionUC.Login("admin@cafe.com", "admin"), "admin arranca con 500 puntos")

	// ── Canje válido ───────────────────────────────────────────
	resp, err := uc.Redeem("3")
	require.NoError(t, err)
	assert.Equal(t, "3", resp.RewardID)
	assert.Equal(t, 200, resp.RemainingPoints, "500 - 300")

	assert.Equal(t, 200, sessionUC.Current().Points, "la sesión refleja la deducción")
	assert.Equal(t, 200, persistedPoints(t, path), "la deducción queda persistida")

	// ── Segundo canje agota el saldo parcialmente ──────────────
	resp, err = uc.Redeem("2")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.RemainingPoints)
}

func TestRedeem_SaldoInsuficiente(t *testing.T) {
	uc, sessionUC, _ := newFixture(t)
	require.True(t, sessionUC.Login("staff@cafe.com", "staff"), "staff arranca con 50 puntos")

	_, err := uc.Redeem("1")
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
	assert.Equal(t, 50, sessionUC.Current().Points, "un canje fallido no toca los puntos")
}

func TestRedeem_RecompensaInexistente(t *testing.T) {
	uc, sessionUC, _ := newFixture(t)
	require.True(t, sessionUC.Login("admin@cafe.com", "admin"))

	_, err := uc.Redeem("999")
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestRedeem_SinSesion(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.Redeem("1")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

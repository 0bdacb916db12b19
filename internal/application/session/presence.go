package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
)

// Probabilidad de estar en tienda por rol. Constantes placeholder de un
// mecanismo real de detección de presencia (p. ej. sondeo de red local).
var inStoreChance = map[string]float64{
	entity.RoleCustomer: 0.3,
	entity.RoleStaff:    0.9,
	entity.RoleAdmin:    0.6,
}

// presenceSimulator recalcula el flag in-store del usuario autenticado con un
// sorteo ponderado por rol. Corre solo mientras hay sesión: su ciclo de vida
// está atado por contexto a la generación de sesión que lo arrancó, así que
// nunca actúa sobre una sesión vieja.
type presenceSimulator struct {
	uc       *UseCase
	interval time.Duration
	chance   func() float64
	cancel   context.CancelFunc
}

func newPresenceSimulator(uc *UseCase, interval time.Duration, chance func() float64) *presenceSimulator {
	if chance == nil {
		chance = rand.Float64
	}
	return &presenceSimulator{uc: uc, interval: interval, chance: chance}
}

// start arranca el lazo para la generación de sesión dada, cancelando antes el
// lazo anterior si lo hubiera. Requiere uc.mu tomado.
func (p *presenceSimulator) start(gen uint64) {
	p.stop()
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go p.run(ctx, gen)
}

// stop cancela el lazo vigente. Requiere uc.mu tomado. No espera al goroutine:
// cualquier evaluación en vuelo comprueba la generación antes de mutar.
func (p *presenceSimulator) stop() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// run evalúa una vez al entrar en sesión y luego en cada tick del período.
func (p *presenceSimulator) run(ctx context.Context, gen uint64) {
	if !p.evaluate(ctx, gen) {
		return
	}
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.evaluate(ctx, gen) {
				return
			}
		}
	}
}

// evaluate hace el sorteo y aplica el resultado. Devuelve false cuando la
// sesión que arrancó el lazo ya no existe y el lazo debe morir.
func (p *presenceSimulator) evaluate(ctx context.Context, gen uint64) bool {
	uc := p.uc
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if ctx.Err() != nil || uc.gen != gen || uc.user == nil {
		return false
	}

	prob, ok := inStoreChance[uc.user.Role]
	if !ok {
		prob = inStoreChance[entity.RoleCustomer]
	}
	inStore := p.chance() < prob

	uc.inStore = inStore
	// Solo hay efecto observable (mutación + re-persistencia) cuando el valor cambia
	if uc.user.IsInStore != inStore {
		uc.user.IsInStore = inStore
		uc.persistLocked()
		uc.log.Debug().Bool("in_store", inStore).Str("role", uc.user.Role).Msg("presencia actualizada")
	}
	return true
}

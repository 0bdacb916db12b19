package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cafe-sang/internal/domain/entity"
	"github.com/tu-usuario/cafe-sang/internal/domain/repository"
	"github.com/tu-usuario/cafe-sang/pkg/logger"
)

// Options parámetros del gestor de sesión.
type Options struct {
	PresenceInterval time.Duration  // período del simulador (120 s por defecto)
	RegisterDelay    time.Duration  // latencia simulada del registro
	PresenceChance   func() float64 // sorteo [0,1); nil usa math/rand (inyectable en tests)
}

// UseCase gestor de sesión: posee el único usuario autenticado del proceso,
// lo persiste completo en cada mutación y arranca/detiene el simulador de
// presencia con el ciclo de vida de la sesión.
//
// Estados: LoggedOut → (Login | Register | SwitchUser) → Authenticated(role)
// → (Logout) → LoggedOut. UpdateUserPoints y los ticks de presencia son
// auto-transiciones que preservan el rol.
type UseCase struct {
	mu      sync.Mutex
	user    *entity.User
	inStore bool // flag de seguimiento propio del gestor; se superpone al materializar
	gen     uint64

	store    repository.StateStore
	log      *logger.Logger
	opts     Options
	presence *presenceSimulator
}

// New construye el gestor restaurando la sesión persistida. Un registro
// corrupto se descarta en silencio y se arranca deslogueado, nunca con error.
func New(store repository.StateStore, log *logger.Logger, opts Options) *UseCase {
	if opts.PresenceInterval <= 0 {
		opts.PresenceInterval = 120 * time.Second
	}
	uc := &UseCase{store: store, log: log, opts: opts}
	uc.presence = newPresenceSimulator(uc, opts.PresenceInterval, opts.PresenceChance)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.restoreLocked()
	return uc
}

// restoreLocked intenta deserializar el registro persistido. Requiere uc.mu.
func (uc *UseCase) restoreLocked() {
	raw, ok, err := uc.store.Get(repository.KeyCurrentUser)
	if err != nil {
		uc.log.Warn().Err(err).Msg("leer sesión persistida")
		return
	}
	if !ok {
		return
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil || !entity.ValidRole(u.Role) {
		// Registro corrupto: se descarta y se arranca deslogueado (fail open)
		uc.log.Warn().Err(err).Msg("sesión persistida ilegible, descartada")
		_ = uc.store.Delete(repository.KeyCurrentUser)
		return
	}
	uc.user = &u
	uc.inStore = u.IsInStore
	uc.gen++
	uc.presence.start(uc.gen)
	uc.log.Info().Str("role", u.Role).Str("user_id", u.ID).Msg("sesión restaurada")
}

// Login busca (email, password) en la tabla estática de credenciales. Con
// match materializa la plantilla del rol, superpone el flag in-store del
// gestor, la fija como sesión actual y la persiste. Sin match devuelve false
// sin ningún cambio de estado.
func (uc *UseCase) Login(email, password string) bool {
	cred, ok := findCredential(email, password)
	if !ok {
		return false
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	u := rolePrototypes[cred.Role]
	u.IsInStore = uc.inStore
	uc.user = &u
	uc.gen++
	uc.persistLocked()
	uc.presence.start(uc.gen)
	uc.log.Info().Str("role", u.Role).Str("user_id", u.ID).Msg("login")
	return true
}

// Register crea siempre un cliente nuevo con 0 puntos e id fresco, simula la
// latencia de un alta real y lo deja como sesión actual. Cualquier falla
// interna se captura y se reporta como false, nunca se propaga.
func (uc *UseCase) Register(ctx context.Context, email, password, fullName, phone string) bool {
	_ = password // el alta demo no almacena credenciales

	if uc.opts.RegisterDelay > 0 {
		timer := time.NewTimer(uc.opts.RegisterDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			uc.log.Warn().Err(ctx.Err()).Msg("registro cancelado")
			return false
		}
	}

	u := entity.User{
		ID:        uuid.New().String(),
		Name:      fullName,
		Email:     email,
		Phone:     phone,
		Points:    0,
		IsInStore: false,
		Role:      entity.RoleCustomer,
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	raw, err := json.Marshal(u)
	if err != nil {
		uc.log.Error().Err(err).Msg("registro: serializar usuario")
		return false
	}
	if err := uc.store.Set(repository.KeyCurrentUser, raw); err != nil {
		uc.log.Error().Err(err).Msg("registro: persistir usuario")
		return false
	}
	uc.user = &u
	uc.inStore = false
	uc.gen++
	uc.presence.start(uc.gen)
	uc.log.Info().Str("user_id", u.ID).Msg("registro")
	return true
}

// Logout limpia la sesión actual y el flag in-store, borra el registro
// persistido y detiene el simulador de presencia. Idempotente.
func (uc *UseCase) Logout() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.presence.stop()
	uc.user = nil
	uc.inStore = false
	uc.gen++
	if err := uc.store.Delete(repository.KeyCurrentUser); err != nil {
		uc.log.Warn().Err(err).Msg("borrar sesión persistida")
	}
	uc.log.Info().Msg("logout")
}

// SwitchUser camino demo: materializa la plantilla del rol sin pasar por
// credenciales. Rol desconocido devuelve false sin cambio de estado.
func (uc *UseCase) SwitchUser(role string) bool {
	proto, ok := rolePrototypes[role]
	if !ok {
		return false
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	proto.IsInStore = uc.inStore
	uc.user = &proto
	uc.gen++
	uc.persistLocked()
	uc.presence.start(uc.gen)
	uc.log.Info().Str("role", role).Msg("cambio de usuario demo")
	return true
}

// UpdateUserPoints reemplaza los puntos y re-persiste. No-op deslogueado.
// El llamador garantiza points >= 0; el gestor no recorta.
func (uc *UseCase) UpdateUserPoints(points int) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.user == nil {
		return false
	}
	uc.user.Points = points
	uc.persistLocked()
	return true
}

// Current devuelve una copia del usuario actual, o nil si no hay sesión.
func (uc *UseCase) Current() *entity.User {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.user == nil {
		return nil
	}
	u := *uc.user
	return &u
}

// IsInStore devuelve el flag de presencia que sigue el gestor.
func (uc *UseCase) IsInStore() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inStore
}

// Close detiene el simulador de presencia. Para el apagado del proceso.
func (uc *UseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.presence.stop()
}

// persistLocked serializa y guarda el usuario actual. Requiere uc.mu. Un fallo
// de escritura se registra y no interrumpe la operación en curso: la sesión en
// memoria sigue siendo la fuente de verdad.
func (uc *UseCase) persistLocked() {
	raw, err := json.Marshal(uc.user)
	if err != nil {
		uc.log.Error().Err(err).Msg("serializar sesión")
		return
	}
	if err := uc.store.Set(repository.KeyCurrentUser, raw); err != nil {
		uc.log.Warn().Err(err).Msg("persistir sesión")
	}
}

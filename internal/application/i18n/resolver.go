package i18n

import (
	"encoding/json"
	"sync"

	"golang.org/x/text/language"

	"github.com/tu-usuario/cafe-sang/internal/domain"
	"github.com/tu-usuario/cafe-sang/internal/domain/repository"
	"github.com/tu-usuario/cafe-sang/pkg/logger"
)

// matcher acepta variantes regionales (vi-VN, en-US) al restaurar el tag
// persistido. El orden fija el índice: 0 = vi, 1 = en.
var (
	supported = []language.Tag{language.Vietnamese, language.English}
	matcher   = language.NewMatcher(supported)
	langCodes = []string{LangVI, LangEN}
)

// Resolver resuelve texto localizado y mantiene el idioma activo del proceso.
// El idioma se persiste bajo la clave "language" y se restaura al construir;
// un valor ausente o inválido cae al default vi.
type Resolver struct {
	mu    sync.RWMutex
	lang  string
	store repository.StateStore
	log   *logger.Logger
}

// New construye el resolver restaurando el idioma persistido.
func New(store repository.StateStore, log *logger.Logger) *Resolver {
	r := &Resolver{lang: LangVI, store: store, log: log}

	raw, ok, err := store.Get(repository.KeyLanguage)
	if err != nil || !ok {
		return r
	}
	var saved string
	if json.Unmarshal(raw, &saved) != nil {
		return r
	}
	if code, ok := normalize(saved); ok {
		r.lang = code
	}
	return r
}

// Language devuelve el idioma activo ("vi" o "en").
func (r *Resolver) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// SetLanguage fija el idioma activo y lo persiste. Acepta vi/en y sus
// variantes regionales; cualquier otro tag es ErrInvalidInput.
func (r *Resolver) SetLanguage(lang string) error {
	code, ok := normalize(lang)
	if !ok {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lang = code
	r.persist()
	return nil
}

// Toggle alterna entre vi y en y devuelve el idioma resultante.
// Es una involución: dos toggles seguidos vuelven al idioma original.
func (r *Resolver) Toggle() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lang == LangVI {
		r.lang = LangEN
	} else {
		r.lang = LangVI
	}
	r.persist()
	return r.lang
}

// Translate devuelve el texto localizado de la clave en el idioma activo.
// Nunca falla: una clave desconocida se devuelve tal cual (visible en la UI,
// útil para detectar traducciones faltantes).
func (r *Resolver) Translate(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if msg, ok := translations[r.lang][key]; ok {
		return msg
	}
	return key
}

// Messages devuelve la tabla completa del idioma pedido (o del activo si lang
// está vacío), para que la vista la cargue de una vez.
func (r *Resolver) Messages(lang string) map[string]string {
	code, ok := normalize(lang)
	if !ok {
		code = r.Language()
	}
	table := translations[code]
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// persist escribe el idioma activo. Requiere r.mu tomado.
func (r *Resolver) persist() {
	raw, _ := json.Marshal(r.lang)
	if err := r.store.Set(repository.KeyLanguage, raw); err != nil {
		r.log.Warn().Err(err).Msg("persistir idioma")
	}
}

// normalize reduce un tag BCP 47 a "vi" o "en". Devuelve false si el tag no
// corresponde a ninguno de los dos con confianza suficiente.
func normalize(tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(parsed)
	if conf < language.High {
		return "", false
	}
	return langCodes[idx], true
}

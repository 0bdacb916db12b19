package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tu-usuario/cafe-sang/internal/domain/repository"
)

// Verificar en tiempo de compilación que Store implementa StateStore.
var _ repository.StateStore = (*Store)(nil)

// Store implementación de StateStore sobre un único archivo JSON.
// El documento completo se lee una vez al abrir y se reescribe entero en cada
// mutación (archivo temporal + rename para no dejar estado a medias).
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open carga (o crea) el archivo de estado. Un archivo corrupto no es fatal:
// se descarta y se arranca con estado vacío.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio: %w", err)
	}
	s := &Store{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer estado: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// Estado ilegible: se descarta completo (fail open, nunca panic)
		s.data = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Get devuelve el valor y true si la clave existe.
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set guarda el valor y reescribe el archivo completo.
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(json.RawMessage, len(value))
	copy(cp, value)
	s.data[key] = cp
	return s.flush()
}

// Delete elimina la clave; borrar una clave ausente no es error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// flush escribe el documento entero de forma atómica. Requiere s.mu tomado.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar estado: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir estado: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("localstore: reemplazar estado: %w", err)
	}
	return nil
}

package repository

// Claves del estado durable local.
const (
	KeyCurrentUser = "currentUser"
	KeyLanguage    = "language"
)

// StateStore define el puerto de persistencia clave–valor local (análogo a
// localStorage): lectura completa al arrancar, escritura completa en cada
// mutación, sin escrituras parciales por campo.
type StateStore interface {
	// Get devuelve el valor y true si la clave existe.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	// Delete es idempotente: borrar una clave ausente no es error.
	Delete(key string) error
}

package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotAuthenticated   = errors.New("no hay sesión activa")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrRewardNotFound     = errors.New("recompensa no encontrada")
	ErrRewardUnavailable  = errors.New("recompensa no disponible")
	ErrInsufficientPoints = errors.New("puntos insuficientes")
)

// APIError fallo normalizado del catálogo remoto. Toda falla de transporte o
// de aplicación llega al llamador con esta forma: Status 0 cuando no hubo
// respuesta HTTP, Message desde el cuerpo {message} o del error de red.
type APIError struct {
	Status  int
	Message string
	Err     error // error original, para diagnóstico
}

// Error implementa la interfaz error.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Unwrap expone el error original para errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

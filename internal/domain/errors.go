package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
)

// UpstreamError representa un fallo del sistema de documentos (Vendus):
// status HTTP no exitoso, o un cuerpo de éxito que viola el protocolo.
// Conserva el código/mensaje del upstream cuando el cuerpo es parseable.
type UpstreamError struct {
	Status  int    // status HTTP devuelto por el upstream
	Code    string // código de error del upstream, si vino en el cuerpo
	Message string
	Details json.RawMessage // cuerpo crudo para diagnóstico
}

// Error implementa error.
func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("vendus: HTTP %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("vendus: HTTP %d: %s", e.Status, e.Message)
}

// AsUpstreamError devuelve el *UpstreamError envuelto en err, o nil.
func AsUpstreamError(err error) *UpstreamError {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue
	}
	return nil
}

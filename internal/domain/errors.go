package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ValidationError agrupa violaciones de constraints por campo. Nunca se
// confunde con ErrNotFound: son estados distintos (422 vs 404).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación fallida en %d campo(s)", len(e.Fields))
}

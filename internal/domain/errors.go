package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrRoleNotFound  = errors.New("rol no encontrado")
	ErrPersonMissing = errors.New("datos de persona ausentes")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrInvalidInput  = errors.New("entrada inválida")
)

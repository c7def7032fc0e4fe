package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrInvalidInput, ErrNotFound y ErrStoreFailure son las tres clases que ve el cliente de la API.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrStoreFailure = errors.New("fallo del almacén")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
)

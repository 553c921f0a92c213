package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidRange = errors.New("rango de fechas inválido")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNoSession    = errors.New("no hay sesión activa")
	ErrUpstream     = errors.New("falla en el backend ERP")
)

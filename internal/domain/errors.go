package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrEmployeeNotFound    = errors.New("empleado no encontrado")
	ErrLegajoAlreadyExists = errors.New("el legajo ya está registrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrPricingConfig       = errors.New("configuración de precios incompleta")
	ErrAccountInactive     = errors.New("la cuenta no está activa")
	ErrTokenExpired        = errors.New("el enlace expiró o no es válido")
)

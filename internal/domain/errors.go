package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStockEntryMissing = errors.New("registro de stock inexistente")
)

// InsufficientStockError indica que una línea de venta pide más de lo disponible.
// Envuelve ErrInsufficientStock para clasificarlo con errors.Is.
type InsufficientStockError struct {
	ProductID  int64
	LocationID int64
	Requested  decimal.Decimal
	Available  decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %d en ubicación %d: solicitado %s, disponible %s",
		e.ProductID, e.LocationID, e.Requested.String(), e.Available.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// StockEntryMissingError indica que una línea referencia un par (producto, ubicación)
// sin fila en la tabla stock. Es un fallo duro: la operación completa se revierte.
type StockEntryMissingError struct {
	ProductID  int64
	LocationID int64
}

func (e *StockEntryMissingError) Error() string {
	return fmt.Sprintf("no existe registro de stock para producto %d en ubicación %d",
		e.ProductID, e.LocationID)
}

func (e *StockEntryMissingError) Unwrap() error { return ErrStockEntryMissing }

// PersistenceError envuelve fallos del almacén (conexión, deadlock, constraint no mapeada).
// El caller puede reintentar la operación completa: el motor garantiza que nada quedó a medias.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error de persistencia en %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

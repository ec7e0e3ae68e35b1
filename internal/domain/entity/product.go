package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados lógicos de producto (baja lógica, nunca DELETE físico).
const (
	ProductStatusActive   = "activo"
	ProductStatusInactive = "inactivo"
)

// Product es un producto del catálogo.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	CategoryID  int64
	Price       decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

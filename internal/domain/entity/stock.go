package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock es la cantidad actual de un producto en una ubicación. Clave compuesta
// (ProductID, LocationID); la fila se crea explícitamente con cantidad 0 y solo
// la mutan el coordinador de órdenes y los movimientos directos de inventario.
type Stock struct {
	ProductID  int64
	LocationID int64
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "entrada" // suma stock
	MovementTypeOut = "salida"  // resta stock
)

// Movement es un movimiento directo de inventario (recepción, corrección
// manual). Se registra y aplica su delta de stock en la misma transacción.
type Movement struct {
	ID          int64
	Type        string
	Quantity    decimal.Decimal
	Description string
	ProductID   int64
	LocationID  int64
	UserID      int64
	CreatedAt   time.Time
}

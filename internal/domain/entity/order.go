package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderKind distingue compras de ventas. Determina la contraparte (proveedor o
// cliente) y el signo del delta de stock que aplica el coordinador.
type OrderKind string

const (
	OrderKindPurchase OrderKind = "compra" // incrementa stock
	OrderKindSale     OrderKind = "venta"  // decrementa stock
)

// Sign devuelve la dirección del movimiento: +1 compra, -1 venta.
func (k OrderKind) Sign() decimal.Decimal {
	if k == OrderKindSale {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}

// Valid reporta si el tipo de orden es conocido.
func (k OrderKind) Valid() bool {
	return k == OrderKindPurchase || k == OrderKindSale
}

// Order es la cabecera de una compra o venta. Se crea junto con sus líneas en
// una sola unidad atómica y después es historia inmutable: no hay update ni
// delete para órdenes confirmadas.
type Order struct {
	ID             int64
	Kind           OrderKind
	CounterpartyID int64 // id_proveedor en compras, id_cliente en ventas
	UserID         int64
	DocumentNumber string
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	Status         string
	Reference      string // UUID que agrupa los movimientos de inventario de esta orden
	IssuedAt       time.Time
	Lines          []OrderLine
}

// OrderLine es una línea de detalle. Subtotal siempre se recalcula en el
// servidor como Quantity × UnitPrice; nunca se confía en el valor del caller.
type OrderLine struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	LocationID int64
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}

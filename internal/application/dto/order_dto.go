package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderHeaderRequest cabecera de una compra o venta entrante.
type OrderHeaderRequest struct {
	CounterpartyID int64           `json:"counterparty_id"`
	UserID         int64           `json:"user_id"`
	DocumentNumber string          `json:"document_number"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"status"`
}

// OrderLineRequest línea de detalle entrante. El subtotal no se acepta del
// caller: siempre lo recalcula el servidor.
type OrderLineRequest struct {
	ProductID  int64           `json:"product_id"`
	LocationID int64           `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// RecordOrderRequest body para POST /api/sales y POST /api/purchases.
type RecordOrderRequest struct {
	Header OrderHeaderRequest `json:"header"`
	Lines  []OrderLineRequest `json:"lines"`
}

// RecordOrderResponse respuesta de éxito con el id asignado a la cabecera.
type RecordOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

// OrderLineResponse línea de detalle en lecturas.
type OrderLineResponse struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	LocationID int64           `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// OrderResponse cabecera con líneas embebidas en lecturas.
type OrderResponse struct {
	ID             int64               `json:"id"`
	Kind           string              `json:"kind"`
	CounterpartyID int64               `json:"counterparty_id"`
	UserID         int64               `json:"user_id"`
	DocumentNumber string              `json:"document_number"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	Tax            decimal.Decimal     `json:"tax"`
	Total          decimal.Decimal     `json:"total"`
	Status         string              `json:"status"`
	IssuedAt       time.Time           `json:"issued_at"`
	Lines          []OrderLineResponse `json:"lines"`
}

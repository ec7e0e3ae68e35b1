package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// StockErrorDetails detalle estructurado de los errores de stock: identifica
// la primera línea que falló y, para stock insuficiente, las cantidades.
type StockErrorDetails struct {
	ProductID  int64            `json:"product_id"`
	LocationID int64            `json:"location_id"`
	Requested  *decimal.Decimal `json:"requested,omitempty"`
	Available  *decimal.Decimal `json:"available,omitempty"`
}

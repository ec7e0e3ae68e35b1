package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	Type        string          `json:"type"` // entrada | salida
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	ProductID   int64           `json:"product_id"`
	LocationID  int64           `json:"location_id"`
	UserID      int64           `json:"user_id"`
}

// MovementResponse movimiento con nombres resueltos.
type MovementResponse struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Description  string          `json:"description"`
	ProductName  string          `json:"product_name"`
	UserName     string          `json:"user_name"`
	LocationName string          `json:"location_name"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AddStockRequest body para POST /api/stock: registra el par
// (producto, ubicación) en el ledger con cantidad inicial 0.
type AddStockRequest struct {
	ProductID  int64 `json:"product_id"`
	LocationID int64 `json:"location_id"`
}

// StockResponse fila del ledger con nombres resueltos.
type StockResponse struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	LocationID   int64           `json:"location_id"`
	LocationName string          `json:"location_name"`
	Quantity     decimal.Decimal `json:"quantity"`
}

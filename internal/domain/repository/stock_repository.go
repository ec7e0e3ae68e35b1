package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/akashadev/akasha-api/internal/domain/entity"
)

// StockView es una fila de stock con los nombres de producto y ubicación
// resueltos, para los listados del ledger.
type StockView struct {
	ProductID    int64
	ProductName  string
	LocationID   int64
	LocationName string
	Quantity     decimal.Decimal
}

// StockRepository define el puerto de acceso al ledger de stock.
type StockRepository interface {
	// Get lee la cantidad actual del par (producto, ubicación). Si la fila no
	// existe devuelve una entrada con cantidad 0 (la ausencia no es error).
	Get(ctx context.Context, productID, locationID int64) (*entity.Stock, error)
	// Create registra el par (producto, ubicación) con cantidad inicial 0.
	// Devuelve domain.ErrDuplicate si la combinación ya existe.
	Create(ctx context.Context, productID, locationID int64) error
	// ApplyDelta aplica un delta con signo en un solo UPDATE condicional y
	// devuelve las filas afectadas (0 = no existe la entrada). Una violación
	// del CHECK de no-negatividad se devuelve como InsufficientStockError.
	ApplyDelta(ctx context.Context, productID, locationID int64, delta decimal.Decimal) (int64, error)
	// ListByProduct devuelve el stock de un producto en todas sus ubicaciones;
	// con productID 0 devuelve el ledger completo.
	ListByProduct(ctx context.Context, productID int64) ([]StockView, error)
}

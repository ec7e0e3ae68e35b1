package orders

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

// AvailabilityValidator comprueba, antes de abrir la transacción, que cada
// línea de una venta puede servirse con el stock actual. Es solo lectura: no
// reserva nada, y el chequeo es punto-en-el-tiempo (ver el CHECK de
// no-negatividad en db/schema.sql para la garantía definitiva frente a
// ventas concurrentes).
type AvailabilityValidator struct {
	stockRepo repository.StockRepository
}

// NewAvailabilityValidator construye el validador sobre el ledger de stock.
func NewAvailabilityValidator(stockRepo repository.StockRepository) *AvailabilityValidator {
	return &AvailabilityValidator{stockRepo: stockRepo}
}

// Validate recorre las líneas en orden y falla en la primera cuya cantidad
// solicitada excede la disponible. Una entrada de stock ausente cuenta como
// cantidad 0 (no es error por sí misma). Cantidades no positivas son
// ErrInvalidInput.
func (v *AvailabilityValidator) Validate(ctx context.Context, lines []entity.OrderLine) error {
	for _, line := range lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		stock, err := v.stockRepo.Get(ctx, line.ProductID, line.LocationID)
		if err != nil {
			return err
		}
		if line.Quantity.GreaterThan(stock.Quantity) {
			return &domain.InsufficientStockError{
				ProductID:  line.ProductID,
				LocationID: line.LocationID,
				Requested:  line.Quantity,
				Available:  stock.Quantity,
			}
		}
	}
	return nil
}

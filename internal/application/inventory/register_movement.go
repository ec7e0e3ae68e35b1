package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

// RegisterMovementUseCase registra un movimiento directo de inventario
// (entrada o salida) y aplica el delta al ledger en la misma transacción, con
// la misma guardia de filas afectadas que el coordinador de órdenes: si el par
// (producto, ubicación) no tiene fila de stock, todo se revierte.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// RegisterMovement valida la entrada, inserta el movimiento y ajusta el stock.
// Una salida que dejaría el stock negativo falla por el CHECK de no-negatividad
// y se devuelve como stock insuficiente.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) error {
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return domain.ErrInvalidInput
	}
	if in.ProductID <= 0 || in.LocationID <= 0 || in.UserID <= 0 {
		return domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}

	delta := in.Quantity
	if in.Type == entity.MovementTypeOut {
		delta = delta.Neg()
	}

	mov := &entity.Movement{
		Type:        in.Type,
		Quantity:    in.Quantity,
		Description: in.Description,
		ProductID:   in.ProductID,
		LocationID:  in.LocationID,
		UserID:      in.UserID,
		CreatedAt:   time.Now(),
	}

	return uc.txRunner.RunMovement(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		rows, err := stockRepo.ApplyDelta(ctx, in.ProductID, in.LocationID, delta)
		if err != nil {
			return err
		}
		if rows == 0 {
			return &domain.StockEntryMissingError{ProductID: in.ProductID, LocationID: in.LocationID}
		}
		return nil
	})
}

package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
	"github.com/akashadev/akasha-api/internal/metrics"
)

// RecordOrderUseCase es el coordinador transaccional de órdenes: persiste una
// cabecera con sus N líneas y aplica los deltas de stock correspondientes como
// una sola unidad atómica. La unidad o confirma completa o deja el almacén
// exactamente como estaba.
//
// Secuencia por invocación: (ventas) pre-flight de disponibilidad fuera de la
// tx; luego, dentro de la tx: cabecera -> por cada línea insert + delta de
// stock con guardia de filas afectadas -> commit. Cualquier error revierte
// todo lo escrito en la unidad.
type RecordOrderUseCase struct {
	txRunner  TxRunner
	validator *AvailabilityValidator
	metrics   *metrics.OrderMetrics
}

// NewRecordOrderUseCase construye el coordinador. El validador lee sobre el
// pool (fuera de la transacción); el TxRunner provee los repos transaccionales.
func NewRecordOrderUseCase(txRunner TxRunner, validator *AvailabilityValidator, m *metrics.OrderMetrics) *RecordOrderUseCase {
	return &RecordOrderUseCase{txRunner: txRunner, validator: validator, metrics: m}
}

// RecordSale registra una venta: valida disponibilidad y decrementa stock.
func (uc *RecordOrderUseCase) RecordSale(ctx context.Context, in dto.RecordOrderRequest) (int64, error) {
	return uc.record(ctx, entity.OrderKindSale, in)
}

// RecordPurchase registra una compra: incrementa stock sin chequeo de
// disponibilidad (las compras solo suman).
func (uc *RecordOrderUseCase) RecordPurchase(ctx context.Context, in dto.RecordOrderRequest) (int64, error) {
	return uc.record(ctx, entity.OrderKindPurchase, in)
}

func (uc *RecordOrderUseCase) record(ctx context.Context, kind entity.OrderKind, in dto.RecordOrderRequest) (int64, error) {
	started := time.Now()

	lines, err := uc.buildLines(in.Lines)
	if err != nil {
		uc.metrics.Rejected(string(kind), metrics.ReasonInvalidInput)
		return 0, err
	}
	if err := validateHeader(in.Header); err != nil {
		uc.metrics.Rejected(string(kind), metrics.ReasonInvalidInput)
		return 0, err
	}

	// Pre-flight solo para ventas: falla rápido sin abrir la transacción.
	// No reserva stock; el CHECK de no-negatividad es la guardia definitiva.
	if kind == entity.OrderKindSale {
		if err := uc.validator.Validate(ctx, lines); err != nil {
			uc.metrics.Rejected(string(kind), rejectionReason(err))
			return 0, err
		}
	}

	order := &entity.Order{
		Kind:           kind,
		CounterpartyID: in.Header.CounterpartyID,
		UserID:         in.Header.UserID,
		DocumentNumber: in.Header.DocumentNumber,
		Subtotal:       in.Header.Subtotal,
		Tax:            in.Header.Tax,
		Total:          in.Header.Total,
		Status:         in.Header.Status,
		Reference:      uuid.New().String(),
		IssuedAt:       time.Now(),
	}

	sign := kind.Sign()
	var orderID int64
	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, stockRepo repository.StockRepository) error {
		id, err := orderRepo.CreateHeader(ctx, order)
		if err != nil {
			return err
		}
		orderID = id

		// Líneas en el orden del caller; tras cada delta se verifica que se
		// afectó exactamente una fila del ledger.
		for i := range lines {
			lines[i].OrderID = id
			if err := orderRepo.CreateLine(ctx, &lines[i]); err != nil {
				return err
			}
			rows, err := stockRepo.ApplyDelta(ctx, lines[i].ProductID, lines[i].LocationID, lines[i].Quantity.Mul(sign))
			if err != nil {
				return err
			}
			if rows == 0 {
				return &domain.StockEntryMissingError{
					ProductID:  lines[i].ProductID,
					LocationID: lines[i].LocationID,
				}
			}
		}
		return nil
	})
	if err != nil {
		uc.metrics.Rejected(string(kind), rejectionReason(err))
		return 0, err
	}

	uc.metrics.Committed(string(kind), time.Since(started))
	return orderID, nil
}

// buildLines valida las líneas entrantes y recalcula el subtotal de cada una
// (cantidad × precio unitario); el valor del caller nunca se usa.
func (uc *RecordOrderUseCase) buildLines(in []dto.OrderLineRequest) ([]entity.OrderLine, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]entity.OrderLine, 0, len(in))
	for _, req := range in {
		if req.ProductID <= 0 || req.LocationID <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if !req.Quantity.GreaterThan(decimal.Zero) || req.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.OrderLine{
			ProductID:  req.ProductID,
			LocationID: req.LocationID,
			Quantity:   req.Quantity,
			UnitPrice:  req.UnitPrice,
			Subtotal:   req.Quantity.Mul(req.UnitPrice),
		})
	}
	return lines, nil
}

func validateHeader(h dto.OrderHeaderRequest) error {
	if h.CounterpartyID <= 0 || h.UserID <= 0 || h.DocumentNumber == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return metrics.ReasonInvalidInput
	case errors.Is(err, domain.ErrInsufficientStock):
		return metrics.ReasonInsufficientStock
	case errors.Is(err, domain.ErrStockEntryMissing):
		return metrics.ReasonStockEntryMissing
	default:
		return metrics.ReasonPersistence
	}
}

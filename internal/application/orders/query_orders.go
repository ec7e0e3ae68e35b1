package orders

import (
	"context"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

// OrderQueryUseCase lecturas de órdenes (cabecera + líneas embebidas).
type OrderQueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderQueryUseCase construye el caso de uso de lectura sobre el pool.
func NewOrderQueryUseCase(orderRepo repository.OrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

// Get devuelve una orden por tipo e id, con sus líneas.
func (uc *OrderQueryUseCase) Get(ctx context.Context, kind entity.OrderKind, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List devuelve todas las órdenes de un tipo.
func (uc *OrderQueryUseCase) List(ctx context.Context, kind entity.OrderKind) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, order := range list {
		out = append(out, toOrderResponse(order))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:             o.ID,
		Kind:           string(o.Kind),
		CounterpartyID: o.CounterpartyID,
		UserID:         o.UserID,
		DocumentNumber: o.DocumentNumber,
		Subtotal:       o.Subtotal,
		Tax:            o.Tax,
		Total:          o.Total,
		Status:         o.Status,
		IssuedAt:       o.IssuedAt,
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:         l.ID,
			ProductID:  l.ProductID,
			LocationID: l.LocationID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			Subtotal:   l.Subtotal,
		})
	}
	return resp
}

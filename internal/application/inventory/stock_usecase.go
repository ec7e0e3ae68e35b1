package inventory

import (
	"context"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

// StockUseCase alta y consulta del ledger de stock. El alta crea la fila
// (producto, ubicación) con cantidad 0; las cantidades solo las mueven el
// coordinador de órdenes y los movimientos directos.
type StockUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.MovementRepository
}

// NewStockUseCase construye el caso de uso sobre el pool.
func NewStockUseCase(stockRepo repository.StockRepository, movRepo repository.MovementRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// AddEntry registra el par (producto, ubicación) en el ledger. Devuelve
// ErrDuplicate si la combinación ya está registrada.
func (uc *StockUseCase) AddEntry(ctx context.Context, in dto.AddStockRequest) error {
	if in.ProductID <= 0 || in.LocationID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.Create(ctx, in.ProductID, in.LocationID)
}

// ListByProduct devuelve el stock de un producto en todas sus ubicaciones;
// con id 0 devuelve el ledger completo.
func (uc *StockUseCase) ListByProduct(ctx context.Context, productID int64) ([]dto.StockResponse, error) {
	views, err := uc.stockRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if productID > 0 && len(views) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.StockResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.StockResponse{
			ProductID:    v.ProductID,
			ProductName:  v.ProductName,
			LocationID:   v.LocationID,
			LocationName: v.LocationName,
			Quantity:     v.Quantity,
		})
	}
	return out, nil
}

// GetMovement devuelve un movimiento por id.
func (uc *StockUseCase) GetMovement(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	view, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	resp := toMovementResponse(*view)
	return &resp, nil
}

// ListMovements devuelve todos los movimientos con nombres resueltos.
func (uc *StockUseCase) ListMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	views, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toMovementResponse(v))
	}
	return out, nil
}

func toMovementResponse(v repository.MovementView) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           v.ID,
		Type:         v.Type,
		Quantity:     v.Quantity,
		Description:  v.Description,
		ProductName:  v.ProductName,
		UserName:     v.UserName,
		LocationName: v.LocationName,
		CreatedAt:    v.CreatedAt,
	}
}

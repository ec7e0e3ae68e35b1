package inventory

import (
	"context"

	"github.com/akashadev/akasha-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de movimientos y stock atados a esa tx. El método se llama
// RunMovement para que el mismo runner de infraestructura pueda satisfacer
// también el puerto del coordinador de órdenes.
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

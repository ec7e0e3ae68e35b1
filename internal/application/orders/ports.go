package orders

import (
	"context"

	"github.com/akashadev/akasha-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad atómica del coordinador: o todo
// lo escrito dentro de fn queda visible, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
	) error) error
}

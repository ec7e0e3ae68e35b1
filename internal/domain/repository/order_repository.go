package repository

import (
	"context"

	"github.com/akashadev/akasha-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para cabeceras y líneas de
// órdenes (compras y ventas). Los inserts se usan dentro de la transacción del
// coordinador; las lecturas operan sobre el pool.
type OrderRepository interface {
	// CreateHeader inserta la cabecera y devuelve el id asignado por la base.
	CreateHeader(ctx context.Context, order *entity.Order) (int64, error)
	// CreateLine inserta una línea ya referenciando el id de la cabecera.
	CreateLine(ctx context.Context, line *entity.OrderLine) error
	// GetByID devuelve la cabecera con sus líneas embebidas, o nil si no existe.
	GetByID(ctx context.Context, kind entity.OrderKind, id int64) (*entity.Order, error)
	// List devuelve las cabeceras de un tipo con sus líneas.
	List(ctx context.Context, kind entity.OrderKind) ([]*entity.Order, error)
}

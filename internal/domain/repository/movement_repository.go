package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akashadev/akasha-api/internal/domain/entity"
)

// MovementView es un movimiento con los nombres de producto, usuario y
// ubicación resueltos (lectura para listados).
type MovementView struct {
	ID           int64
	Type         string
	Quantity     decimal.Decimal
	Description  string
	ProductName  string
	UserName     string
	LocationName string
	CreatedAt    time.Time
}

// MovementRepository define el puerto de persistencia de movimientos de inventario.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*MovementView, error)
	List(ctx context.Context) ([]MovementView, error)
}

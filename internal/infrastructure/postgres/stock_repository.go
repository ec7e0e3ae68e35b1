package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una ubicación. Si la fila no
// existe devuelve una entrada con cantidad 0.
func (r *StockRepo) Get(ctx context.Context, productID, locationID int64) (*entity.Stock, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND location_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
		}
		return nil, &domain.PersistenceError{Op: "get stock", Err: err}
	}
	return &s, nil
}

// Create registra el par (producto, ubicación) con cantidad inicial 0.
func (r *StockRepo) Create(ctx context.Context, productID, locationID int64) error {
	query := `
		INSERT INTO stock (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())`
	_, err := r.q.Exec(ctx, query, productID, locationID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return &domain.PersistenceError{Op: "insert stock", Err: err}
	}
	return nil
}

// ApplyDelta aplica el delta con signo en un solo UPDATE condicional (nunca
// read-then-write en código de aplicación) y devuelve las filas afectadas.
// Una violación del CHECK quantity >= 0 significa que una venta concurrente
// dejó sin disponible lo que el pre-flight vio: se mapea a stock insuficiente.
func (r *StockRepo) ApplyDelta(ctx context.Context, productID, locationID int64, delta decimal.Decimal) (int64, error) {
	query := `
		UPDATE stock SET quantity = quantity + $3, updated_at = now()
		WHERE product_id = $1 AND location_id = $2`
	tag, err := r.q.Exec(ctx, query, productID, locationID, delta)
	if err != nil {
		if isCheckViolation(err) {
			return 0, &domain.InsufficientStockError{
				ProductID:  productID,
				LocationID: locationID,
				Requested:  delta.Neg(),
			}
		}
		return 0, &domain.PersistenceError{Op: "update stock", Err: err}
	}
	return tag.RowsAffected(), nil
}

// ListByProduct devuelve el ledger con nombres de producto y ubicación; con
// productID 0 devuelve todas las filas.
func (r *StockRepo) ListByProduct(ctx context.Context, productID int64) ([]repository.StockView, error) {
	query := `
		SELECT s.product_id, p.name, s.location_id, l.name, s.quantity
		FROM stock s
		JOIN products p ON p.id = s.product_id
		JOIN locations l ON l.id = s.location_id`
	args := []any{}
	if productID > 0 {
		query += ` WHERE s.product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY p.name, l.name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list stock", Err: err}
	}
	defer rows.Close()

	var views []repository.StockView
	for rows.Next() {
		var v repository.StockView
		if err := rows.Scan(&v.ProductID, &v.ProductName, &v.LocationID, &v.LocationName, &v.Quantity); err != nil {
			return nil, &domain.PersistenceError{Op: "scan stock", Err: err}
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo persistencia de cabeceras y líneas de órdenes.
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// CreateHeader inserta la cabecera y devuelve el id asignado por la base.
func (r *OrderRepo) CreateHeader(ctx context.Context, order *entity.Order) (int64, error) {
	query := `
		INSERT INTO orders (kind, counterparty_id, user_id, document_number,
			subtotal, tax, total, status, reference, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		order.Kind, order.CounterpartyID, order.UserID, order.DocumentNumber,
		order.Subtotal, order.Tax, order.Total, order.Status, order.Reference,
		order.IssuedAt,
	).Scan(&id)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "insert order", Err: err}
	}
	return id, nil
}

// CreateLine inserta una línea de detalle ya referenciando la cabecera.
func (r *OrderRepo) CreateLine(ctx context.Context, line *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (order_id, product_id, location_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		line.OrderID, line.ProductID, line.LocationID,
		line.Quantity, line.UnitPrice, line.Subtotal,
	).Scan(&line.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert order line", Err: err}
	}
	return nil
}

// GetByID devuelve la cabecera con sus líneas embebidas, o nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, kind entity.OrderKind, id int64) (*entity.Order, error) {
	query := `
		SELECT id, kind, counterparty_id, user_id, document_number,
			subtotal, tax, total, status, reference, issued_at
		FROM orders WHERE id = $1 AND kind = $2`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id, kind).Scan(
		&o.ID, &o.Kind, &o.CounterpartyID, &o.UserID, &o.DocumentNumber,
		&o.Subtotal, &o.Tax, &o.Total, &o.Status, &o.Reference, &o.IssuedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "get order", Err: err}
	}
	lines, err := r.linesFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// List devuelve las cabeceras de un tipo, más recientes primero, con líneas.
func (r *OrderRepo) List(ctx context.Context, kind entity.OrderKind) ([]*entity.Order, error) {
	query := `
		SELECT id, kind, counterparty_id, user_id, document_number,
			subtotal, tax, total, status, reference, issued_at
		FROM orders WHERE kind = $1
		ORDER BY issued_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, kind)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list orders", Err: err}
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.Kind, &o.CounterpartyID, &o.UserID, &o.DocumentNumber,
			&o.Subtotal, &o.Tax, &o.Total, &o.Status, &o.Reference, &o.IssuedAt,
		); err != nil {
			return nil, &domain.PersistenceError{Op: "scan order", Err: err}
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "list orders", Err: err}
	}

	for _, o := range orders {
		lines, err := r.linesFor(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return orders, nil
}

func (r *OrderRepo) linesFor(ctx context.Context, orderID int64) ([]entity.OrderLine, error) {
	query := `
		SELECT id, order_id, product_id, location_id, quantity, unit_price, subtotal
		FROM order_lines WHERE order_id = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list order lines", Err: err}
	}
	defer rows.Close()

	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.LocationID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, &domain.PersistenceError{Op: "scan order line", Err: err}
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

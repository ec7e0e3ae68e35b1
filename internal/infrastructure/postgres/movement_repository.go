package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persistencia de movimientos de inventario.
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento y deja el id asignado en la entidad.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (type, quantity, description, product_id, location_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.Type, m.Quantity, m.Description, m.ProductID, m.LocationID, m.UserID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return &domain.PersistenceError{Op: "insert movement", Err: err}
	}
	return nil
}

const movementSelect = `
	SELECT m.id, m.type, m.quantity, m.description, p.name, u.name, l.name, m.created_at
	FROM movements m
	JOIN products p ON p.id = m.product_id
	JOIN users u ON u.id = m.user_id
	JOIN locations l ON l.id = m.location_id`

// GetByID devuelve un movimiento con nombres resueltos, o nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*repository.MovementView, error) {
	var v repository.MovementView
	err := r.q.QueryRow(ctx, movementSelect+` WHERE m.id = $1`, id).Scan(
		&v.ID, &v.Type, &v.Quantity, &v.Description,
		&v.ProductName, &v.UserName, &v.LocationName, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &domain.PersistenceError{Op: "get movement", Err: err}
	}
	return &v, nil
}

// List devuelve todos los movimientos, más recientes primero.
func (r *MovementRepo) List(ctx context.Context) ([]repository.MovementView, error) {
	rows, err := r.q.Query(ctx, movementSelect+` ORDER BY m.created_at DESC, m.id DESC`)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list movements", Err: err}
	}
	defer rows.Close()

	var views []repository.MovementView
	for rows.Next() {
		var v repository.MovementView
		if err := rows.Scan(
			&v.ID, &v.Type, &v.Quantity, &v.Description,
			&v.ProductName, &v.UserName, &v.LocationName, &v.CreatedAt,
		); err != nil {
			return nil, &domain.PersistenceError{Op: "scan movement", Err: err}
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/application/inventory"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct {
	productID  int64
	locationID int64
}

type memStockRepo struct {
	entries map[stockKey]decimal.Decimal
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{entries: make(map[stockKey]decimal.Decimal)}
}

func (r *memStockRepo) seed(productID, locationID int64, qty string) {
	r.entries[stockKey{productID, locationID}] = decimal.RequireFromString(qty)
}

func (r *memStockRepo) Get(_ context.Context, productID, locationID int64) (*entity.Stock, error) {
	qty := r.entries[stockKey{productID, locationID}]
	return &entity.Stock{ProductID: productID, LocationID: locationID, Quantity: qty}, nil
}

func (r *memStockRepo) Create(_ context.Context, productID, locationID int64) error {
	key := stockKey{productID, locationID}
	if _, ok := r.entries[key]; ok {
		return domain.ErrDuplicate
	}
	r.entries[key] = decimal.Zero
	return nil
}

func (r *memStockRepo) ApplyDelta(_ context.Context, productID, locationID int64, delta decimal.Decimal) (int64, error) {
	key := stockKey{productID, locationID}
	current, ok := r.entries[key]
	if !ok {
		return 0, nil
	}
	next := current.Add(delta)
	if next.IsNegative() {
		return 0, &domain.InsufficientStockError{
			ProductID:  productID,
			LocationID: locationID,
			Requested:  delta.Neg(),
			Available:  current,
		}
	}
	r.entries[key] = next
	return 1, nil
}

func (r *memStockRepo) ListByProduct(_ context.Context, _ int64) ([]repository.StockView, error) {
	return nil, nil
}

type memMovementRepo struct {
	movements []entity.Movement
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = int64(len(r.movements) + 1)
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, _ int64) (*repository.MovementView, error) {
	return nil, nil
}

func (r *memMovementRepo) List(_ context.Context) ([]repository.MovementView, error) {
	return nil, nil
}

type memTxRunner struct {
	movRepo   *memMovementRepo
	stockRepo *memStockRepo
}

func (r *memTxRunner) RunMovement(_ context.Context, fn func(repository.MovementRepository, repository.StockRepository) error) error {
	movSnap := len(r.movRepo.movements)
	stockSnap := make(map[stockKey]decimal.Decimal, len(r.stockRepo.entries))
	for k, v := range r.stockRepo.entries {
		stockSnap[k] = v
	}
	if err := fn(r.movRepo, r.stockRepo); err != nil {
		r.movRepo.movements = r.movRepo.movements[:movSnap]
		r.stockRepo.entries = stockSnap
		return err
	}
	return nil
}

func newUseCase() (*inventory.RegisterMovementUseCase, *memMovementRepo, *memStockRepo) {
	movRepo := &memMovementRepo{}
	stockRepo := newMemStockRepo()
	uc := inventory.NewRegisterMovementUseCase(&memTxRunner{movRepo: movRepo, stockRepo: stockRepo})
	return uc, movRepo, stockRepo
}

func request(movType string, productID, locationID int64, qty string) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		Type:       movType,
		Quantity:   decimal.RequireFromString(qty),
		ProductID:  productID,
		LocationID: locationID,
		UserID:     1,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	uc, movRepo, stockRepo := newUseCase()
	stockRepo.seed(1, 1, "3")

	err := uc.RegisterMovement(context.Background(), request(entity.MovementTypeIn, 1, 1, "4"))
	require.NoError(t, err)

	qty := stockRepo.entries[stockKey{1, 1}]
	assert.True(t, qty.Equal(decimal.RequireFromString("7")))
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, entity.MovementTypeIn, movRepo.movements[0].Type)
}

func TestRegisterMovement_SalidaRestaStock(t *testing.T) {
	uc, _, stockRepo := newUseCase()
	stockRepo.seed(1, 1, "3")

	err := uc.RegisterMovement(context.Background(), request(entity.MovementTypeOut, 1, 1, "2"))
	require.NoError(t, err)

	qty := stockRepo.entries[stockKey{1, 1}]
	assert.True(t, qty.Equal(decimal.RequireFromString("1")))
}

// Salida mayor al disponible: falla por la guardia de no-negatividad y el
// movimiento no queda registrado.
func TestRegisterMovement_SalidaExcesiva_Rollback(t *testing.T) {
	uc, movRepo, stockRepo := newUseCase()
	stockRepo.seed(1, 1, "3")

	err := uc.RegisterMovement(context.Background(), request(entity.MovementTypeOut, 1, 1, "5"))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, movRepo.movements, "el movimiento debe revertirse junto con el delta")
	qty := stockRepo.entries[stockKey{1, 1}]
	assert.True(t, qty.Equal(decimal.RequireFromString("3")))
}

// Movimiento sobre un par sin fila de stock: 0 filas afectadas, rollback total.
func TestRegisterMovement_SinRegistroDeStock(t *testing.T) {
	uc, movRepo, _ := newUseCase()

	err := uc.RegisterMovement(context.Background(), request(entity.MovementTypeIn, 9, 9, "1"))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrStockEntryMissing)

	var missing *domain.StockEntryMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, int64(9), missing.ProductID)
	assert.Empty(t, movRepo.movements)
}

func TestRegisterMovement_EntradaInvalida(t *testing.T) {
	uc, _, stockRepo := newUseCase()
	stockRepo.seed(1, 1, "3")

	cases := map[string]dto.RegisterMovementRequest{
		"tipo desconocido":   request("ajuste", 1, 1, "1"),
		"cantidad cero":      request(entity.MovementTypeIn, 1, 1, "0"),
		"cantidad negativa":  request(entity.MovementTypeIn, 1, 1, "-1"),
		"producto inválido":  request(entity.MovementTypeIn, 0, 1, "1"),
		"ubicación inválida": request(entity.MovementTypeIn, 1, 0, "1"),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			err := uc.RegisterMovement(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashadev/akasha-api/internal/application/orders"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
)

func line(productID, locationID int64, qty string) entity.OrderLine {
	return entity.OrderLine{
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   decimal.RequireFromString(qty),
	}
}

func TestValidate_TodasLasLineasDisponibles(t *testing.T) {
	stockRepo := newMemStockRepo()
	stockRepo.seed(1, 1, "5")
	stockRepo.seed(2, 1, "3")
	v := orders.NewAvailabilityValidator(stockRepo)

	err := v.Validate(context.Background(), []entity.OrderLine{
		line(1, 1, "5"),
		line(2, 1, "1"),
	})
	assert.NoError(t, err, "solicitar exactamente lo disponible debe pasar")
}

// Falla en la primera línea corta, no en las siguientes.
func TestValidate_FallaEnPrimeraLineaCorta(t *testing.T) {
	stockRepo := newMemStockRepo()
	stockRepo.seed(1, 1, "5")
	stockRepo.seed(2, 1, "0")
	stockRepo.seed(3, 1, "0")
	v := orders.NewAvailabilityValidator(stockRepo)

	err := v.Validate(context.Background(), []entity.OrderLine{
		line(1, 1, "2"),
		line(2, 1, "1"),
		line(3, 1, "1"),
	})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(2), insufficient.ProductID,
		"debe reportar la primera línea que no puede servirse")
	assert.True(t, insufficient.Requested.Equal(decimal.RequireFromString("1")))
	assert.True(t, insufficient.Available.IsZero())
}

// Una entrada ausente del ledger cuenta como disponible 0, no como error.
func TestValidate_EntradaAusenteCuentaComoCero(t *testing.T) {
	stockRepo := newMemStockRepo()
	v := orders.NewAvailabilityValidator(stockRepo)

	err := v.Validate(context.Background(), []entity.OrderLine{line(42, 9, "1")})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.IsZero())
}

func TestValidate_CantidadNoPositiva(t *testing.T) {
	stockRepo := newMemStockRepo()
	stockRepo.seed(1, 1, "5")
	v := orders.NewAvailabilityValidator(stockRepo)

	err := v.Validate(context.Background(), []entity.OrderLine{line(1, 1, "0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = v.Validate(context.Background(), []entity.OrderLine{line(1, 1, "-3")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El validador es solo lectura: ni pasar ni fallar cambia el ledger.
func TestValidate_NoReservaNiModifica(t *testing.T) {
	stockRepo := newMemStockRepo()
	stockRepo.seed(1, 1, "5")
	v := orders.NewAvailabilityValidator(stockRepo)

	_ = v.Validate(context.Background(), []entity.OrderLine{line(1, 1, "5")})
	_ = v.Validate(context.Background(), []entity.OrderLine{line(1, 1, "50")})

	assert.True(t, stockRepo.quantity(1, 1).Equal(decimal.RequireFromString("5")))
}

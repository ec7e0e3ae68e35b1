package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/application/inventory"
	"github.com/akashadev/akasha-api/internal/domain"
)

func TestAddEntry_CreaConCantidadCero(t *testing.T) {
	stockRepo := newMemStockRepo()
	uc := inventory.NewStockUseCase(stockRepo, &memMovementRepo{})

	err := uc.AddEntry(context.Background(), dto.AddStockRequest{ProductID: 1, LocationID: 2})
	require.NoError(t, err)

	qty := stockRepo.entries[stockKey{1, 2}]
	assert.True(t, qty.IsZero(), "el alta registra el par con cantidad 0")
}

func TestAddEntry_Duplicado(t *testing.T) {
	stockRepo := newMemStockRepo()
	stockRepo.seed(1, 2, "5")
	uc := inventory.NewStockUseCase(stockRepo, &memMovementRepo{})

	err := uc.AddEntry(context.Background(), dto.AddStockRequest{ProductID: 1, LocationID: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	qty := stockRepo.entries[stockKey{1, 2}]
	assert.Equal(t, "5", qty.String(), "el alta duplicada no debe tocar la cantidad existente")
}

func TestAddEntry_EntradaInvalida(t *testing.T) {
	uc := inventory.NewStockUseCase(newMemStockRepo(), &memMovementRepo{})

	err := uc.AddEntry(context.Background(), dto.AddStockRequest{ProductID: 0, LocationID: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.AddEntry(context.Background(), dto.AddStockRequest{ProductID: 1, LocationID: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByProduct_SinFilasConIdPositivo(t *testing.T) {
	uc := inventory.NewStockUseCase(newMemStockRepo(), &memMovementRepo{})

	_, err := uc.ListByProduct(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto sin stock registrado es not found en la consulta directa")
}

package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/application/usecase"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
)

type memProductRepo struct {
	nextID   int64
	products []*entity.Product
}

func (r *memProductRepo) Create(product *entity.Product) error {
	r.nextID++
	product.ID = r.nextID
	clone := *product
	r.products = append(r.products, &clone)
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	return r.products, nil
}

func (r *memProductRepo) Update(product *entity.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			clone := *product
			r.products[i] = &clone
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) Deactivate(id int64) error {
	for _, p := range r.products {
		if p.ID == id {
			p.Status = entity.ProductStatusInactive
			return nil
		}
	}
	return domain.ErrNotFound
}

func createRequest(sku string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:        sku,
		Name:       "Café molido 500g",
		CategoryID: 1,
		Price:      decimal.RequireFromString("12.50"),
	}
}

func TestProductCreate_AsignaEstadoActivo(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	out, err := uc.Create(createRequest("CAFE-500"))
	require.NoError(t, err)
	assert.Positive(t, out.ID)
	assert.Equal(t, entity.ProductStatusActive, out.Status)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	_, err := uc.Create(createRequest("CAFE-500"))
	require.NoError(t, err)

	_, err = uc.Create(createRequest("CAFE-500"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	_, err := uc.Create(dto.CreateProductRequest{Name: "sin sku"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{
		SKU: "X", Name: "precio negativo", Price: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_SoloCamposPresentes(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})
	created, err := uc.Create(createRequest("CAFE-500"))
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Price: decimal.RequireFromString("14.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Café molido 500g", out.Name, "el nombre no enviado no debe cambiar")
	assert.True(t, out.Price.Equal(decimal.RequireFromString("14.00")))
}

func TestProductDeactivate_BajaLogica(t *testing.T) {
	repo := &memProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(createRequest("CAFE-500"))
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusInactive, got.Status,
		"la baja es lógica: el producto sigue existiendo")
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	_, err := uc.GetByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

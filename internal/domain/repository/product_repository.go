package repository

import "github.com/akashadev/akasha-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Deactivate realiza la baja lógica (estado -> inactivo).
	Deactivate(id int64) error
}

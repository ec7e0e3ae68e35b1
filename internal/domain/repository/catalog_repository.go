package repository

import "github.com/akashadev/akasha-api/internal/domain/entity"

// Puertos de los datos de referencia del catálogo. CRUD plano: el motor de
// órdenes solo los usa como claves foráneas.

type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
}

type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	List() ([]*entity.Location, error)
}

type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}

type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
}

package usecase

import (
	"time"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
	"github.com/akashadev/akasha-api/internal/domain/repository"
)

// Casos de uso de los datos de referencia: categorías, ubicaciones,
// proveedores y clientes. CRUD plano sin más validación que los campos
// obligatorios; el motor de órdenes los referencia por id.

type CategoryUseCase struct {
	repo repository.CategoryRepository
}

func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}, nil
}

func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}, nil
}

func (uc *CategoryUseCase) List() ([]*dto.CategoryResponse, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}

type LocationUseCase struct {
	repo repository.LocationRepository
}

func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

func (uc *LocationUseCase) Create(in dto.LocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	location := &entity.Location{Name: in.Name, Address: in.Address}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return &dto.LocationResponse{ID: location.ID, Name: location.Name, Address: location.Address}, nil
}

func (uc *LocationUseCase) GetByID(id int64) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.LocationResponse{ID: location.ID, Name: location.Name, Address: location.Address}, nil
}

func (uc *LocationUseCase) List() ([]*dto.LocationResponse, error) {
	locations, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, &dto.LocationResponse{ID: l.ID, Name: l.Name, Address: l.Address})
	}
	return out, nil
}

type SupplierUseCase struct {
	repo repository.SupplierRepository
}

func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) Create(in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{Name: in.Name, TaxID: in.TaxID, Phone: in.Phone, Email: in.Email, CreatedAt: time.Now()}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

func (uc *SupplierUseCase) GetByID(id int64) (*dto.CounterpartyResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplierResponse(supplier), nil
}

func (uc *SupplierUseCase) List() ([]*dto.CounterpartyResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CounterpartyResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierResponse(s))
	}
	return out, nil
}

func supplierResponse(s *entity.Supplier) *dto.CounterpartyResponse {
	return &dto.CounterpartyResponse{ID: s.ID, Name: s.Name, TaxID: s.TaxID, Phone: s.Phone, Email: s.Email}
}

type CustomerUseCase struct {
	repo repository.CustomerRepository
}

func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (uc *CustomerUseCase) Create(in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{Name: in.Name, TaxID: in.TaxID, Phone: in.Phone, Email: in.Email, CreatedAt: time.Now()}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

func (uc *CustomerUseCase) GetByID(id int64) (*dto.CounterpartyResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customerResponse(customer), nil
}

func (uc *CustomerUseCase) List() ([]*dto.CounterpartyResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CounterpartyResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerResponse(c))
	}
	return out, nil
}

func customerResponse(c *entity.Customer) *dto.CounterpartyResponse {
	return &dto.CounterpartyResponse{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Phone: c.Phone, Email: c.Email}
}

package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/application/usecase"
)

// Handlers de los datos de referencia (protegidos). Create, GetByID y List
// para categorías, ubicaciones, proveedores y clientes.

type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.uc.Create(in)
	if err != nil {
		return catalogError(c, err, "categoría")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	category, err := h.uc.GetByID(id)
	if err != nil {
		return catalogError(c, err, "categoría")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.uc.List()
	if err != nil {
		return catalogError(c, err, "categoría")
	}
	return c.JSON(categories)
}

type LocationHandler struct {
	uc *usecase.LocationUseCase
}

func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	location, err := h.uc.Create(in)
	if err != nil {
		return catalogError(c, err, "ubicación")
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	location, err := h.uc.GetByID(id)
	if err != nil {
		return catalogError(c, err, "ubicación")
	}
	return c.JSON(location)
}

func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.uc.List()
	if err != nil {
		return catalogError(c, err, "ubicación")
	}
	return c.JSON(locations)
}

type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.Create(in)
	if err != nil {
		return catalogError(c, err, "proveedor")
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	supplier, err := h.uc.GetByID(id)
	if err != nil {
		return catalogError(c, err, "proveedor")
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.uc.List()
	if err != nil {
		return catalogError(c, err, "proveedor")
	}
	return c.JSON(suppliers)
}

type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return catalogError(c, err, "cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	customer, err := h.uc.GetByID(id)
	if err != nil {
		return catalogError(c, err, "cliente")
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List()
	if err != nil {
		return catalogError(c, err, "cliente")
	}
	return c.JSON(customers)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return id, nil
}

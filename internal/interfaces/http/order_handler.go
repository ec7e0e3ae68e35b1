package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/application/orders"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
)

// OrderHandler maneja compras y ventas (protegido). Cada orden es una unidad
// atómica: cabecera, líneas y deltas de stock, o todo o nada.
type OrderHandler struct {
	record *orders.RecordOrderUseCase
	query  *orders.OrderQueryUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(record *orders.RecordOrderUseCase, query *orders.OrderQueryUseCase) *OrderHandler {
	return &OrderHandler{record: record, query: query}
}

// CreateSale registra una venta y decrementa stock.
// POST /api/sales
func (h *OrderHandler) CreateSale(c *fiber.Ctx) error {
	return h.create(c, entity.OrderKindSale)
}

// CreatePurchase registra una compra e incrementa stock.
// POST /api/purchases
func (h *OrderHandler) CreatePurchase(c *fiber.Ctx) error {
	return h.create(c, entity.OrderKindPurchase)
}

func (h *OrderHandler) create(c *fiber.Ctx, kind entity.OrderKind) error {
	var in dto.RecordOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var (
		id  int64
		err error
	)
	if kind == entity.OrderKindSale {
		id, err = h.record.RecordSale(c.Context(), in)
	} else {
		id, err = h.record.RecordPurchase(c.Context(), in)
	}
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordOrderResponse{OrderID: id})
}

// GetSale obtiene una venta con sus líneas.
// GET /api/sales/:id
func (h *OrderHandler) GetSale(c *fiber.Ctx) error {
	return h.get(c, entity.OrderKindSale)
}

// GetPurchase obtiene una compra con sus líneas.
// GET /api/purchases/:id
func (h *OrderHandler) GetPurchase(c *fiber.Ctx) error {
	return h.get(c, entity.OrderKindPurchase)
}

func (h *OrderHandler) get(c *fiber.Ctx, kind entity.OrderKind) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	order, err := h.query.Get(c.Context(), kind, id)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(order)
}

// ListSales lista las ventas.
// GET /api/sales
func (h *OrderHandler) ListSales(c *fiber.Ctx) error {
	return h.list(c, entity.OrderKindSale)
}

// ListPurchases lista las compras.
// GET /api/purchases
func (h *OrderHandler) ListPurchases(c *fiber.Ctx) error {
	return h.list(c, entity.OrderKindPurchase)
}

func (h *OrderHandler) list(c *fiber.Ctx, kind entity.OrderKind) error {
	list, err := h.query.List(c.Context(), kind)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(list)
}

// orderError mapea los errores del motor de órdenes al contrato HTTP. Los
// errores de stock llevan detalle estructurado con la línea que falló.
func orderError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: "stock insuficiente",
			Details: dto.StockErrorDetails{
				ProductID:  insufficient.ProductID,
				LocationID: insufficient.LocationID,
				Requested:  &insufficient.Requested,
				Available:  &insufficient.Available,
			},
		})
	}
	var missing *domain.StockEntryMissingError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "STOCK_ENTRY_MISSING",
			Message: "registro de stock inexistente",
			Details: dto.StockErrorDetails{
				ProductID:  missing.ProductID,
				LocationID: missing.LocationID,
			},
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrStockEntryMissing):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STOCK_ENTRY_MISSING", Message: "registro de stock inexistente"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

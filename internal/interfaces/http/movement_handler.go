package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/application/inventory"
	"github.com/akashadev/akasha-api/internal/domain"
)

// MovementHandler movimientos directos de inventario (protegido).
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	stock    *inventory.StockUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, stock *inventory.StockUseCase) *MovementHandler {
	return &MovementHandler{register: register, stock: stock}
}

// Register registra un movimiento y ajusta el stock en la misma transacción.
// POST /api/inventory/movements
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == 0 {
		in.UserID = GetUserID(c)
	}
	if err := h.register.RegisterMovement(c.Context(), in); err != nil {
		return orderError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// GetByID obtiene un movimiento con nombres resueltos.
// GET /api/inventory/movements/:id
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	mov, err := h.stock.GetMovement(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(mov)
}

// List lista los movimientos, más recientes primero.
// GET /api/inventory/movements
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movs, err := h.stock.ListMovements(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movs)
}

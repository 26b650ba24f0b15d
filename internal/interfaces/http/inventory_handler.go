package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/inventory"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// InventoryHandler maneja movimientos de inventario y consultas de stock.
type InventoryHandler struct {
	movementUC *inventory.RegisterMovementUseCase
	queriesUC  *inventory.StockQueriesUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movementUC *inventory.RegisterMovementUseCase, queriesUC *inventory.StockQueriesUseCase) *InventoryHandler {
	return &InventoryHandler{movementUC: movementUC, queriesUC: queriesUC}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Entrada, salida, ajuste, transferencia, devolución o pérdida.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventory.MovementInput{
		UserID:          GetUserID(c),
		ProductID:       in.ProductID,
		WarehouseID:     in.WarehouseID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Type:            entity.MovementType(in.Type),
		Reason:          entity.MovementReason(in.Reason),
		Quantity:        in.Quantity,
		Notes:           in.Notes,
	}
	if err := h.movementUC.RegisterMovement(c.Context(), input); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// GetStock godoc
// @Summary      Stock de un producto en una bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId    path  string  true  "ID del producto"
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.StockDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{productId}/{warehouseId} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	out, err := h.queriesUC.GetStock(c.Context(), c.Params("productId"), c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListWarehouseStock godoc
// @Summary      Stock de todos los productos de una bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {array}  dto.StockDTO
// @Router       /api/warehouses/{warehouseId}/stock [get]
func (h *InventoryHandler) ListWarehouseStock(c *fiber.Ctx) error {
	out, err := h.queriesUC.ListWarehouseStock(c.Context(), c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        from       query  string  false  "Desde (RFC 3339 o YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta"
// @Param        limit      query  int     false  "Límite (default 50)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.StockMovementDTO
// @Router       /api/inventory/movements/{productId} [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
		}
		to = &t
	}
	limit, offset := parsePagination(c, 50)
	out, err := h.queriesUC.ListMovementsByProduct(c.Context(), c.Params("productId"), from, to, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos bajo su stock mínimo en una bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/warehouses/{warehouseId}/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.queriesUC.LowStockReport(c.Context(), c.Params("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parsePagination lee limit/offset de la query con un límite por defecto.
func parsePagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		page = dto.PageRequest{}
	}
	page.Normalize(defaultLimit)
	return page.Limit, page.Offset
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// SaleHandler maneja las peticiones HTTP del ciclo de vida de ventas (protegido).
type SaleHandler struct {
	createUC       *sales.CreateSaleUseCase
	submitUC       *sales.SubmitForApprovalUseCase
	approveUC      *sales.ApproveSaleUseCase
	rejectUC       *sales.RejectSaleUseCase
	completeUC     *sales.CompleteSaleUseCase
	cancelUC       *sales.CancelSaleUseCase
	addItemUC      *sales.AddItemUseCase
	removeItemUC   *sales.RemoveItemUseCase
	updateItemUC   *sales.UpdateItemQuantityUseCase
	saleDiscountUC *sales.ApplySaleDiscountUseCase
	itemDiscountUC *sales.ApplyItemDiscountUseCase
	queriesUC      *sales.SaleQueriesUseCase
}

// SaleHandlerDeps casos de uso requeridos por el handler.
type SaleHandlerDeps struct {
	CreateUC       *sales.CreateSaleUseCase
	SubmitUC       *sales.SubmitForApprovalUseCase
	ApproveUC      *sales.ApproveSaleUseCase
	RejectUC       *sales.RejectSaleUseCase
	CompleteUC     *sales.CompleteSaleUseCase
	CancelUC       *sales.CancelSaleUseCase
	AddItemUC      *sales.AddItemUseCase
	RemoveItemUC   *sales.RemoveItemUseCase
	UpdateItemUC   *sales.UpdateItemQuantityUseCase
	SaleDiscountUC *sales.ApplySaleDiscountUseCase
	ItemDiscountUC *sales.ApplyItemDiscountUseCase
	QueriesUC      *sales.SaleQueriesUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(deps SaleHandlerDeps) *SaleHandler {
	return &SaleHandler{
		createUC:       deps.CreateUC,
		submitUC:       deps.SubmitUC,
		approveUC:      deps.ApproveUC,
		rejectUC:       deps.RejectUC,
		completeUC:     deps.CompleteUC,
		cancelUC:       deps.CancelUC,
		addItemUC:      deps.AddItemUC,
		removeItemUC:   deps.RemoveItemUC,
		updateItemUC:   deps.UpdateItemUC,
		saleDiscountUC: deps.SaleDiscountUC,
		itemDiscountUC: deps.ItemDiscountUC,
		queriesUC:      deps.QueriesUC,
	}
}

// Create godoc
// @Summary      Crear venta (borrador)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Cliente, ítems y descuentos"
// @Success      201   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id es requerido"})
	}
	out, err := h.createUC.Execute(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queriesUC.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas con filtros
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        status      query  string  false  "Estado"
// @Param        start_date  query  string  false  "Desde (RFC 3339 o YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Hasta"
// @Param        created_by  query  string  false  "Vendedor"
// @Param        min_total   query  number  false  "Total mínimo"
// @Param        max_total   query  number  false  "Total máximo"
// @Success      200  {array}  dto.SaleListItem
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filters, err := parseSaleFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.queriesUC.ListSales(c.Context(), filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPending godoc
// @Summary      Ventas pendientes de aprobación
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleListItem
// @Router       /api/sales/pending [get]
func (h *SaleHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.queriesUC.ListPendingSales(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCustomer godoc
// @Summary      Ventas de un cliente
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {array}  dto.SaleListItem
// @Router       /api/customers/{customerId}/sales [get]
func (h *SaleHandler) ListByCustomer(c *fiber.Ctx) error {
	filters, err := parseSaleFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.queriesUC.ListSalesByCustomer(c.Context(), c.Params("customerId"), filters)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar venta a aprobación
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/submit [post]
func (h *SaleHandler) Submit(c *fiber.Ctx) error {
	if err := h.submitUC.Execute(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "venta enviada a aprobación"})
}

// Approve godoc
// @Summary      Aprobar venta y reservar stock
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.ApproveSaleRequest  true  "Bodega donde reservar"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/approve [post]
func (h *SaleHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	if err := h.approveUC.Execute(c.Context(), c.Params("id"), GetUserID(c), in.WarehouseID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "venta aprobada y stock reservado"})
}

// Reject godoc
// @Summary      Rechazar venta con motivo
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.RejectSaleRequest  true  "Motivo de rechazo"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/reject [post]
func (h *SaleHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.rejectUC.Execute(c.Context(), c.Params("id"), GetUserID(c), in.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "venta rechazada"})
}

// Complete godoc
// @Summary      Completar venta: confirma reservas y registra deuda si es a crédito
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.CompleteSaleRequest  true  "Bodega de despacho"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/complete [post]
func (h *SaleHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	if err := h.completeUC.Execute(c.Context(), c.Params("id"), in.WarehouseID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "venta completada"})
}

// Cancel godoc
// @Summary      Cancelar venta (libera reservas si estaba aprobada)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.CancelSaleRequest  false  "Bodega (solo si está aprobada)"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelSaleRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.cancelUC.Execute(c.Context(), c.Params("id"), in.WarehouseID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "venta cancelada"})
}

// AddItem godoc
// @Summary      Agregar ítem a una venta editable
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.AddItemRequest  true  "Producto, cantidad, precio y descuento"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/items [post]
func (h *SaleHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	if err := h.addItemUC.Execute(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ítem agregado"})
}

// UpdateItemQuantity godoc
// @Summary      Cambiar la cantidad de un ítem
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id      path  string  true  "ID de la venta"
// @Param        itemId  path  string  true  "ID del ítem"
// @Param        body    body  dto.UpdateItemQuantityRequest  true  "Nueva cantidad"
// @Success      200     {object}  map[string]string
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/items/{itemId} [put]
func (h *SaleHandler) UpdateItemQuantity(c *fiber.Ctx) error {
	var in dto.UpdateItemQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.updateItemUC.Execute(c.Context(), c.Params("id"), c.Params("itemId"), in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cantidad actualizada"})
}

// RemoveItem godoc
// @Summary      Eliminar un ítem de una venta editable
// @Tags         sales
// @Security     Bearer
// @Param        id      path  string  true  "ID de la venta"
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200     {object}  map[string]string
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/items/{itemId} [delete]
func (h *SaleHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.removeItemUC.Execute(c.Context(), c.Params("id"), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ítem eliminado"})
}

// ApplyDiscount godoc
// @Summary      Aplicar descuento a nivel venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.ApplySaleDiscountRequest  true  "Tipo y valor"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/discount [put]
func (h *SaleHandler) ApplyDiscount(c *fiber.Ctx) error {
	var in dto.ApplySaleDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.saleDiscountUC.Execute(c.Context(), c.Params("id"), in.DiscountType, in.DiscountValue); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "descuento aplicado"})
}

// ApplyItemDiscount godoc
// @Summary      Aplicar descuento a un ítem
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Param        id      path  string  true  "ID de la venta"
// @Param        itemId  path  string  true  "ID del ítem"
// @Param        body    body  dto.ApplySaleDiscountRequest  true  "Tipo y valor"
// @Success      200     {object}  map[string]string
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/items/{itemId}/discount [put]
func (h *SaleHandler) ApplyItemDiscount(c *fiber.Ctx) error {
	var in dto.ApplySaleDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.itemDiscountUC.Execute(c.Context(), c.Params("id"), c.Params("itemId"), in.DiscountType, in.DiscountValue); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "descuento de ítem aplicado"})
}

// parseSaleFilters arma los filtros desde la query string.
func parseSaleFilters(c *fiber.Ctx) (repository.SaleFilters, error) {
	var q dto.ListSalesQuery
	if err := c.QueryParser(&q); err != nil {
		return repository.SaleFilters{}, err
	}
	filters := repository.SaleFilters{
		Status:    q.Status,
		CreatedBy: q.CreatedBy,
		MinTotal:  q.MinTotal,
		MaxTotal:  q.MaxTotal,
	}
	if q.StartDate != "" {
		t, err := parseDate(q.StartDate)
		if err != nil {
			return repository.SaleFilters{}, err
		}
		filters.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := parseDate(q.EndDate)
		if err != nil {
			return repository.SaleFilters{}, err
		}
		filters.EndDate = &t
	}
	return filters, nil
}

// parseDate acepta RFC 3339 o fecha simple YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// OrderHandler pedidos de un tipo fijo (compra, venta o devolución).
type OrderHandler struct {
	uc   *usecase.OrderUseCase
	kind string
}

// NewOrderHandler construye el handler para kind (entity.OrderKind*).
func NewOrderHandler(uc *usecase.OrderUseCase, kind string) *OrderHandler {
	return &OrderHandler{uc: uc, kind: kind}
}

// Register godoc
// @Summary      Registrar pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterOrderRequest  true  "document_number, party_id, items"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/orders/purchases [post]
// @Router       /api/orders/sales [post]
// @Router       /api/orders/returns [post]
func (h *OrderHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Register(c.Context(), h.kind, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Router       /api/orders/purchases [get]
// @Router       /api/orders/sales [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), h.kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido por número de documento
// @Tags         orders
// @Security     Bearer
// @Param        nro  path  string  true  "Número de documento"
// @Success      204
// @Router       /api/orders/purchases/{nro} [delete]
// @Router       /api/orders/sales/{nro} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), h.kind, c.Params("nro")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DocumentHandler movimientos de un documento.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Get godoc
// @Summary      Movimientos y total de un documento
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        nro  path  string  true  "Número de documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{nro} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("nro"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// kardexLoader lo implementa *kardex.LoadUseCase.
type kardexLoader interface {
	Load(ctx context.Context, productID string, r entity.DateRange) (*dto.KardexResponse, error)
}

// kardexRenderer lo implementa *pdf.MarotoPDFGenerator.
type kardexRenderer interface {
	GenerateKardexPDF(ctx context.Context, k *dto.KardexResponse) ([]byte, error)
}

// KardexHandler expone el kardex de un producto en JSON y PDF.
type KardexHandler struct {
	uc  kardexLoader
	pdf kardexRenderer
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc kardexLoader, pdf kardexRenderer) *KardexHandler {
	return &KardexHandler{uc: uc, pdf: pdf}
}

// ParseDateRange interpreta from/to (YYYY-MM-DD, inclusivos). Vacíos = sin límite.
func ParseDateRange(from, to string) (entity.DateRange, error) {
	var r entity.DateRange
	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return r, fmt.Errorf("from inválido %q: use YYYY-MM-DD", from)
		}
		r.From = &t
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return r, fmt.Errorf("to inválido %q: use YYYY-MM-DD", to)
		}
		r.To = &t
	}
	return r, nil
}

func (h *KardexHandler) load(c *fiber.Ctx) (*dto.KardexResponse, error) {
	r, err := ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return nil, badRequest(c, "INVALID_DATE", err.Error())
	}
	out, err := h.uc.Load(c.Context(), c.Params("id"), r)
	if err != nil {
		return nil, respondError(c, err)
	}
	return out, nil
}

// Get godoc
// @Summary      Kardex del producto
// @Description  Movimientos del producto con saldo acumulado, más reciente primero. El saldo comienza
//
//	en cero en la primera entrada del rango; current_quantity es el stock almacenado.
//
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del producto"
// @Param        from  query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200   {object}  dto.KardexResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/kardex [get]
func (h *KardexHandler) Get(c *fiber.Ctx) error {
	out, err := h.load(c)
	if out == nil {
		return err
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Kardex del producto en PDF
// @Tags         kardex
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID del producto"
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200
// @Router       /api/products/{id}/kardex.pdf [get]
func (h *KardexHandler) PDF(c *fiber.Ctx) error {
	out, err := h.load(c)
	if out == nil {
		return err
	}
	doc, err := h.pdf.GenerateKardexPDF(c.Context(), out)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="kardex-%s.pdf"`, out.Product.ID))
	return c.Send(doc)
}

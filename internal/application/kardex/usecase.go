// Package kardex orquesta la carga del kardex de un producto: producto e historial se consultan en
// paralelo y el libro se reconstruye una sola vez cuando ambos llegan.
package kardex

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	ledger "github.com/jhoicas/estoque-api/internal/domain/kardex"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// LoadUseCase carga producto + movimientos y construye el kardex.
type LoadUseCase struct {
	products  repository.ProductReader
	movements repository.MovementQuery
	log       *logger.Logger
}

// NewLoadUseCase construye el caso de uso.
func NewLoadUseCase(products repository.ProductReader, movements repository.MovementQuery, log *logger.Logger) *LoadUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &LoadUseCase{products: products, movements: movements, log: log.Component("kardex")}
}

// Load devuelve el kardex del producto para el rango (vacío = historial completo).
// Si cualquiera de las dos consultas falla se devuelve el error y no se reconstruye nada.
func (uc *LoadUseCase) Load(ctx context.Context, productID string, r entity.DateRange) (*dto.KardexResponse, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !r.Valid() {
		return nil, domain.ErrInvalidRange
	}

	var (
		product *entity.Product
		records []*entity.MovementRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := uc.products.GetByID(gctx, productID)
		if err != nil {
			return fmt.Errorf("producto %s: %w", productID, err)
		}
		if p == nil {
			return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
		}
		product = p
		return nil
	})
	g.Go(func() error {
		list, err := uc.movements.ListByProduct(gctx, productID, r)
		if err != nil {
			return fmt.Errorf("movimientos de %s: %w", productID, err)
		}
		records = list
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.log.Warn().Err(err).Str("product_id", productID).Msg("carga de kardex fallida")
		return nil, err
	}

	entries := ledger.BuildLedger(records)
	net := ledger.NetBalance(entries)
	uc.log.Debug().
		Str("product_id", productID).
		Int("entries", len(entries)).
		Str("net_change", net.String()).
		Str("current_quantity", product.Quantity.String()).
		Msg("kardex reconstruido")

	resp := &dto.KardexResponse{
		Product:           ProductDTO(product),
		FullHistory:       r.IsZero(),
		CurrentQuantity:   product.Quantity,
		NetChangeInPeriod: net,
		Entries:           make([]dto.KardexEntryDTO, 0, len(entries)),
	}
	if r.From != nil {
		s := r.From.Format(dateLayout)
		resp.From = &s
	}
	if r.To != nil {
		s := r.To.Format(dateLayout)
		resp.To = &s
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, EntryDTO(e))
	}
	return resp, nil
}

// EntryDTO convierte una entrada del libro en su DTO.
func EntryDTO(e entity.LedgerEntry) dto.KardexEntryDTO {
	out := dto.KardexEntryDTO{
		Date:           e.Timestamp,
		Operation:      e.OperationLabel,
		OperationKind:  string(e.Operation),
		Direction:      e.Direction().String(),
		DocumentNumber: e.DocumentNumber,
		Quantity:       e.Quantity,
		Subtotal:       ledger.Subtotal(&e.MovementRecord),
		Balance:        e.RunningBalance,
		AverageCost:    e.AverageCost,
	}
	if e.UnitValue.Valid {
		v := e.UnitValue.Decimal
		out.UnitValue = &v
	}
	return out
}

// ProductDTO convierte un producto en su DTO.
func ProductDTO(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Quantity:  p.Quantity,
	}
}

package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	ledger "github.com/jhoicas/estoque-api/internal/domain/kardex"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// DocumentUseCase consulta de los movimientos de un documento (pedido) con su total.
type DocumentUseCase struct {
	movements repository.MovementQuery
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(movements repository.MovementQuery) *DocumentUseCase {
	return &DocumentUseCase{movements: movements}
}

// Get devuelve los movimientos del documento y Total = Σ cantidad × valor unitario (nulo cuenta 0).
func (uc *DocumentUseCase) Get(ctx context.Context, documentNumber string) (*dto.DocumentResponse, error) {
	documentNumber = strings.TrimSpace(documentNumber)
	if documentNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	records, err := uc.movements.ListByDocument(ctx, documentNumber)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	out := &dto.DocumentResponse{
		DocumentNumber: documentNumber,
		Total:          ledger.DocumentTotal(records),
		Items:          make([]dto.DocumentItemDTO, 0, len(records)),
	}
	for _, r := range records {
		if r == nil {
			continue
		}
		if out.Operation == "" {
			out.Operation = r.OperationLabel
		}
		item := dto.DocumentItemDTO{
			ProductID:     r.ProductID,
			Date:          r.Timestamp,
			OperationKind: string(r.Operation),
			Direction:     r.Direction().String(),
			Quantity:      r.Quantity,
			Subtotal:      ledger.Subtotal(r),
		}
		if r.UnitValue.Valid {
			v := r.UnitValue.Decimal
			item.UnitValue = &v
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MovementQuery define el puerto de consulta de movimientos (servicio de transacciones del backend).
type MovementQuery interface {
	// ListByProduct devuelve los movimientos del producto; el rango (inclusivo) es opcional.
	ListByProduct(ctx context.Context, productID string, r entity.DateRange) ([]*entity.MovementRecord, error)
	// ListByDocument devuelve los movimientos originados por un documento (pedido).
	ListByDocument(ctx context.Context, documentNumber string) ([]*entity.MovementRecord, error)
}

package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// OrderRepository puerto de pedidos. kind es entity.OrderKindPurchase o entity.OrderKindSale.
type OrderRepository interface {
	Register(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, kind string) ([]*entity.Order, error)
	Delete(ctx context.Context, kind, documentNumber string) error
}

package erpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo adaptador de /pedido/{compra,venda}.
type OrderRepo struct {
	c *Client
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(c *Client) *OrderRepo {
	return &OrderRepo{c: c}
}

// orderPath la devolución se registra en el endpoint de venta.
func orderPath(kind string) (string, error) {
	switch kind {
	case entity.OrderKindPurchase:
		return "/pedido/compra", nil
	case entity.OrderKindSale, entity.OrderKindReturn:
		return "/pedido/venda", nil
	}
	return "", fmt.Errorf("%w: tipo de pedido %q", domain.ErrInvalidInput, kind)
}

// Register POST /pedido/compra | /pedido/venda
func (r *OrderRepo) Register(ctx context.Context, order *entity.Order) error {
	path, err := orderPath(order.Kind)
	if err != nil {
		return err
	}
	_, err = r.c.do(ctx, http.MethodPost, path, nil, pedidoFromEntity(order))
	return err
}

// List GET /pedido/{compra,venda}/listar
func (r *OrderRepo) List(ctx context.Context, kind string) ([]*entity.Order, error) {
	path, err := orderPath(kind)
	if err != nil {
		return nil, err
	}
	list, _, err := fetch[[]pedidoWire](ctx, r.c, http.MethodGet, path+"/listar", nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Order, 0, len(list))
	for i := range list {
		out = append(out, list[i].toEntity(kind, r.c.loc))
	}
	return out, nil
}

// Delete DELETE /pedido/{compra,venda}/remover?nroDocumento=
func (r *OrderRepo) Delete(ctx context.Context, kind, documentNumber string) error {
	path, err := orderPath(kind)
	if err != nil {
		return err
	}
	_, err = r.c.do(ctx, http.MethodDelete, path+"/remover", url.Values{"nroDocumento": {documentNumber}}, nil)
	return err
}

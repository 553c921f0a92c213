package erpclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador de /produto del backend.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// List GET /produto
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	list, _, err := fetch[[]produtoWire](ctx, r.c, http.MethodGet, "/produto", nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(list))
	for i := range list {
		out = append(out, list[i].toEntity())
	}
	return out, nil
}

// GetByID GET /produto/id?id= ; devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	w, ok, err := fetch[produtoWire](ctx, r.c, http.MethodGet, "/produto/id", url.Values{"id": {id}}, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	p := w.toEntity()
	if p.ID == "" {
		p.ID = id
	}
	return p, nil
}

// Create POST /produto/cadastro
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.c.do(ctx, http.MethodPost, "/produto/cadastro", nil, produtoFromEntity(product))
	return err
}

// Delete DELETE /produto/remover?id=
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.c.do(ctx, http.MethodDelete, "/produto/remover", url.Values{"id": {id}}, nil)
	return err
}

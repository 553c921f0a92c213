package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ProductReader = (*ProductRepo)(nil)

// ProductRepo lectura de productos desde la tabla produto del backend.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id_produto::text, COALESCE(codigo, ''), COALESCE(nome_produto, ''), preco_custo, preco_venda, quantidade
		FROM produto WHERE id_produto::text = $1`
	var (
		p                 entity.Product
		cost, sale, stock decimal.NullDecimal
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Code, &p.Name, &cost, &sale, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.CostPrice = cost.Decimal
	p.SalePrice = sale.Decimal
	p.Quantity = stock.Decimal
	return &p, nil
}

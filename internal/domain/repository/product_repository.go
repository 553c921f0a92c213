package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ProductReader lectura de productos. GetByID devuelve (nil, nil) si no existe.
type ProductReader interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

// ProductRepository puerto completo de productos del backend.
type ProductRepository interface {
	ProductReader
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}

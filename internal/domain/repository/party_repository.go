package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ClientRepository puerto de clientes. GetByID devuelve (nil, nil) si no existe.
type ClientRepository interface {
	List(ctx context.Context) ([]*entity.Client, error)
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}

// SupplierRepository puerto de proveedores.
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
}

// AddressRepository puerto de direcciones (solo lectura).
type AddressRepository interface {
	List(ctx context.Context) ([]*entity.Address, error)
}

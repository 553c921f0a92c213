package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/kardex"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. El stock lo mantiene el backend vía pedidos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto en el backend.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Code:      strings.TrimSpace(in.Code),
		Name:      in.Name,
		CostPrice: in.CostPrice,
		SalePrice: in.SalePrice,
		Quantity:  in.Quantity,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := kardex.ProductDTO(product)
	return &out, nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := kardex.ProductDTO(product)
	return &out, nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) (dto.ListResponse[dto.ProductResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, kardex.ProductDTO(p))
	}
	return dto.NewListResponse(items), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// LowStock productos con stock menor o igual al umbral (vista de reposición del catálogo).
func (uc *ProductUseCase) LowStock(ctx context.Context, threshold decimal.Decimal) (dto.ListResponse[dto.ProductResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	items := make([]dto.ProductResponse, 0)
	for _, p := range list {
		if p.Quantity.LessThanOrEqual(threshold) {
			items = append(items, kardex.ProductDTO(p))
		}
	}
	return dto.NewListResponse(items), nil
}

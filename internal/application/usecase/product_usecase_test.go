package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestProductUseCase_Create(t *testing.T) {
	repo := &memProducts{}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code: " P-1 ", Name: "Parafuso", SalePrice: decimal.RequireFromString("1.50"), Quantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "P-1", repo.created.Code)
	assert.Equal(t, "Parafuso", out.Name)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "x", Quantity: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_GetByID(t *testing.T) {
	repo := &memProducts{items: []*entity.Product{{ID: "1", Name: "Parafuso"}}}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Parafuso", out.Name)

	_, err = uc.GetByID(context.Background(), "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_ListAndLowStock(t *testing.T) {
	repo := &memProducts{items: []*entity.Product{
		{ID: "1", Quantity: decimal.NewFromInt(2)},
		{ID: "2", Quantity: decimal.NewFromInt(50)},
	}}
	uc := usecase.NewProductUseCase(repo)

	all, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	low, err := uc.LowStock(context.Background(), decimal.NewFromInt(5))
	require.NoError(t, err)
	require.Equal(t, 1, low.Total)
	assert.Equal(t, "1", low.Items[0].ID)
}

func TestProductUseCase_ListEmptyIsNotNil(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProducts{})
	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Zero(t, out.Total)
}

func TestProductUseCase_Delete(t *testing.T) {
	repo := &memProducts{}
	uc := usecase.NewProductUseCase(repo)
	require.NoError(t, uc.Delete(context.Background(), "9"))
	assert.Equal(t, "9", repo.deleted)
	assert.ErrorIs(t, uc.Delete(context.Background(), ""), domain.ErrInvalidInput)
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestDocumentUseCase_Total(t *testing.T) {
	movements := &memMovements{byDocument: map[string][]*entity.MovementRecord{
		"V-1": {
			{ProductID: "1", OperationLabel: "VENDA", Operation: entity.OperationVenda, Quantity: decimal.NewFromInt(2), UnitValue: decimal.NewNullDecimal(decimal.RequireFromString("10.50"))},
			{ProductID: "2", OperationLabel: "VENDA", Operation: entity.OperationVenda, Quantity: decimal.NewFromInt(3)},
			{ProductID: "3", OperationLabel: "VENDA", Operation: entity.OperationVenda, Quantity: decimal.NewFromInt(1), UnitValue: decimal.NewNullDecimal(decimal.RequireFromString("9.99"))},
		},
	}}
	uc := usecase.NewDocumentUseCase(movements)

	out, err := uc.Get(context.Background(), "V-1")
	require.NoError(t, err)
	assert.Equal(t, "VENDA", out.Operation)
	assert.Equal(t, "30.99", out.Total.String())
	require.Len(t, out.Items, 3)
	assert.Nil(t, out.Items[1].UnitValue)
	assert.True(t, out.Items[1].Subtotal.IsZero())
	assert.Equal(t, "SAIDA", out.Items[0].Direction)
}

func TestDocumentUseCase_Errors(t *testing.T) {
	uc := usecase.NewDocumentUseCase(&memMovements{})

	_, err := uc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Get(context.Background(), "X-0")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = usecase.NewDocumentUseCase(&memMovements{err: domain.ErrUpstream}).Get(context.Background(), "V-1")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

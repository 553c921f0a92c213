package kardex_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/kardex"
)

var base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func mov(day int, label, doc string, qty int64) *entity.MovementRecord {
	return &entity.MovementRecord{
		ProductID:      "7",
		Timestamp:      base.AddDate(0, 0, day),
		OperationLabel: label,
		Operation:      entity.ParseOperation(label),
		DocumentNumber: doc,
		Quantity:       decimal.NewFromInt(qty),
	}
}

func balances(ledger []entity.LedgerEntry) []string {
	out := make([]string, len(ledger))
	for i, e := range ledger {
		out[i] = e.RunningBalance.String()
	}
	return out
}

func docs(ledger []entity.LedgerEntry) []string {
	out := make([]string, len(ledger))
	for i, e := range ledger {
		out[i] = e.DocumentNumber
	}
	return out
}

func TestBuildLedger_SaldoAcumulado(t *testing.T) {
	records := []*entity.MovementRecord{
		mov(3, "DEVOLUCAO", "D-3", 1),
		mov(1, "COMPRA", "C-1", 10),
		mov(2, "VENDA", "V-2", 3),
	}

	ledger := kardex.BuildLedger(records)

	require.Len(t, ledger, 3)
	assert.Equal(t, []string{"8", "7", "10"}, balances(ledger), "más reciente primero")
	assert.Equal(t, []string{"D-3", "V-2", "C-1"}, docs(ledger))
	assert.Equal(t, "8", kardex.NetBalance(ledger).String())
}

func TestBuildLedger_NoModificaEntrada(t *testing.T) {
	records := []*entity.MovementRecord{mov(2, "VENDA", "B", 1), mov(1, "COMPRA", "A", 5)}
	_ = kardex.BuildLedger(records)
	assert.Equal(t, "B", records[0].DocumentNumber)
	assert.Equal(t, "A", records[1].DocumentNumber)
}

func TestBuildLedger_Determinista(t *testing.T) {
	records := []*entity.MovementRecord{
		mov(5, "SAIDA", "S-5", 2),
		mov(1, "ENTRADA", "E-1", 4),
		mov(1, "VENDA", "V-1", 1),
		mov(3, "COMPRA", "C-3", 6),
	}
	first := kardex.BuildLedger(records)
	second := kardex.BuildLedger(records)
	assert.Equal(t, first, second)
}

func TestBuildLedger_EmpateEstable(t *testing.T) {
	// Mismo timestamp: se conserva el orden de entrada al ordenar ascendente.
	records := []*entity.MovementRecord{
		mov(1, "COMPRA", "primero", 5),
		mov(1, "VENDA", "segundo", 5),
		mov(1, "COMPRA", "tercero", 2),
	}

	ledger := kardex.BuildLedger(records)

	assert.Equal(t, []string{"tercero", "segundo", "primero"}, docs(ledger))
	assert.Equal(t, []string{"2", "0", "5"}, balances(ledger))
}

func TestBuildLedger_Vacio(t *testing.T) {
	ledger := kardex.BuildLedger(nil)
	assert.Empty(t, ledger)
	assert.True(t, kardex.NetBalance(ledger).IsZero())
	assert.True(t, kardex.NetBalance([]entity.LedgerEntry{}).IsZero())
}

func TestBuildLedger_IgnoraNil(t *testing.T) {
	ledger := kardex.BuildLedger([]*entity.MovementRecord{nil, mov(1, "COMPRA", "C", 3)})
	require.Len(t, ledger, 1)
	assert.Equal(t, "3", ledger[0].RunningBalance.String())
}

func TestBuildLedger_TipoDesconocidoEsSalida(t *testing.T) {
	r := mov(1, "TRANSFERENCIA", "T-1", 5)
	assert.Equal(t, entity.OperationDesconhecida, r.Operation)
	assert.Equal(t, "-5", kardex.Contribution(r).String())

	ledger := kardex.BuildLedger([]*entity.MovementRecord{r})
	assert.Equal(t, "-5", ledger[0].RunningBalance.String())
}

// La variación neta de una ventana filtrada no es el stock absoluto, y recortar localmente
// un kardex completo no equivale a reconstruirlo con el rango aplicado en el servicio.
func TestBuildLedger_VentanaEsRelativa(t *testing.T) {
	full := []*entity.MovementRecord{
		mov(1, "COMPRA", "C-1", 10),
		mov(2, "VENDA", "V-2", 3),
		mov(3, "DEVOLUCAO", "D-3", 1),
		mov(4, "VENDA", "V-4", 2),
	}
	currentStock := decimal.NewFromInt(6) // cantidad almacenada del producto

	fullLedger := kardex.BuildLedger(full)
	assert.True(t, kardex.NetBalance(fullLedger).Equal(currentStock), "historial completo = stock")

	// Recorte local de los días 3..4 sobre el kardex completo.
	sliced := fullLedger[:2]
	assert.Equal(t, []string{"6", "8"}, balances(sliced))

	// Consulta con rango en el servicio: solo llegan los días 3..4.
	rebuilt := kardex.BuildLedger(full[2:])
	assert.Equal(t, []string{"-1", "1"}, balances(rebuilt))

	assert.NotEqual(t, balances(sliced), balances(rebuilt))
	assert.Equal(t, "-1", kardex.NetBalance(rebuilt).String())
	assert.False(t, kardex.NetBalance(rebuilt).Equal(currentStock), "variación del período ≠ stock actual")
}

func TestContribution_CantidadAusenteEsCero(t *testing.T) {
	r := &entity.MovementRecord{Operation: entity.OperationCompra} // Quantity en cero por coerción
	assert.True(t, kardex.Contribution(r).IsZero())
	ledger := kardex.BuildLedger([]*entity.MovementRecord{r})
	assert.True(t, ledger[0].RunningBalance.IsZero())
}

func TestSubtotal_ValorUnitarioNulo(t *testing.T) {
	r := mov(1, "VENDA", "V", 4)
	assert.True(t, kardex.Subtotal(r).IsZero())

	r.UnitValue = decimal.NewNullDecimal(decimal.RequireFromString("2.50"))
	assert.Equal(t, "10", kardex.Subtotal(r).String())
}

func TestDocumentTotal(t *testing.T) {
	a := mov(1, "VENDA", "V-9", 2)
	a.UnitValue = decimal.NewNullDecimal(decimal.NewFromInt(15))
	b := mov(1, "VENDA", "V-9", 3) // sin valor unitario
	c := mov(1, "VENDA", "V-9", 1)
	c.UnitValue = decimal.NewNullDecimal(decimal.RequireFromString("0.99"))

	assert.Equal(t, "30.99", kardex.DocumentTotal([]*entity.MovementRecord{a, b, nil, c}).String())
	assert.True(t, kardex.DocumentTotal(nil).IsZero())
}

func TestWeightedAverageCost(t *testing.T) {
	got := kardex.WeightedAverageCost(
		decimal.NewFromInt(10), decimal.NewFromInt(100),
		decimal.NewFromInt(10), decimal.NewFromInt(120),
	)
	assert.Equal(t, "110", got.String())

	// Saldo resultante no positivo: sin costo.
	zero := kardex.WeightedAverageCost(decimal.NewFromInt(-5), decimal.NewFromInt(10), decimal.NewFromInt(2), decimal.NewFromInt(10))
	assert.True(t, zero.IsZero())
}

func TestBuildLedger_CostoMedio(t *testing.T) {
	c1 := mov(1, "COMPRA", "C-1", 10)
	c1.UnitValue = decimal.NewNullDecimal(decimal.NewFromInt(100))
	v2 := mov(2, "VENDA", "V-2", 5)
	v2.UnitValue = decimal.NewNullDecimal(decimal.NewFromInt(180))
	c3 := mov(3, "COMPRA", "C-3", 5)
	c3.UnitValue = decimal.NewNullDecimal(decimal.NewFromInt(130))
	e4 := mov(4, "ENTRADA", "E-4", 2) // sin valor unitario: no altera el costo

	ledger := kardex.BuildLedger([]*entity.MovementRecord{c1, v2, c3, e4})

	require.Len(t, ledger, 4)
	costs := make([]string, len(ledger))
	for i, e := range ledger {
		costs[i] = e.AverageCost.String()
	}
	// (5*100 + 5*130) / 10 = 115; la venta conserva el costo previo.
	assert.Equal(t, []string{"115", "115", "100", "100"}, costs)
}

func TestBuildLedger_CostoMedioTrasSaldoNegativo(t *testing.T) {
	v1 := mov(1, "VENDA", "V-1", 3)
	c2 := mov(2, "COMPRA", "C-2", 4)
	c2.UnitValue = decimal.NewNullDecimal(decimal.RequireFromString("7.5"))

	ledger := kardex.BuildLedger([]*entity.MovementRecord{v1, c2})

	assert.Equal(t, "7.5", ledger[0].AverageCost.String())
	assert.True(t, ledger[1].AverageCost.IsZero())
}

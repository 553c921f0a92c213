package kardex

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// WeightedAverageCost costo promedio ponderado tras una entrada.
// NuevoCosto = ((Saldo * CostoActual) + (CantEntrada * CostoEntrada)) / (Saldo + CantEntrada)
func WeightedAverageCost(balance, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := balance.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := balance.Mul(currentCost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}

// nextAverageCost recalcula el costo medio solo en entradas con valor unitario.
// Con saldo previo no positivo el costo de la entrada reemplaza al anterior.
func nextAverageCost(prevBalance, prevCost decimal.Decimal, r *entity.MovementRecord) decimal.Decimal {
	if r.Direction() != entity.Inbound || !r.UnitValue.Valid {
		return prevCost
	}
	if prevBalance.LessThanOrEqual(decimal.Zero) {
		return r.UnitValue.Decimal
	}
	return WeightedAverageCost(prevBalance, prevCost, r.Quantity, r.UnitValue.Decimal).Round(4)
}

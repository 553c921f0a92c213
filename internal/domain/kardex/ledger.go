// Package kardex reconstruye el libro de movimientos (kardex) de un producto con saldo acumulado.
// Servicio de dominio puro: sin I/O, sin estado, recalculado en cada consulta.
package kardex

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// BuildLedger ordena los registros por fecha ascendente (orden estable), acumula el saldo
// (entrada suma, salida resta), el costo medio ponderado, y devuelve las entradas de la más reciente a la más antigua.
// No filtra por fecha: el rango se aplica en el servicio de consulta. El slice recibido no se modifica.
func BuildLedger(records []*entity.MovementRecord) []entity.LedgerEntry {
	sorted := make([]*entity.MovementRecord, 0, len(records))
	for _, r := range records {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	ledger := make([]entity.LedgerEntry, len(sorted))
	balance, cost := decimal.Zero, decimal.Zero
	for i, r := range sorted {
		cost = nextAverageCost(balance, cost, r)
		balance = balance.Add(Contribution(r))
		ledger[len(sorted)-1-i] = entity.LedgerEntry{
			MovementRecord: *r,
			RunningBalance: balance,
			AverageCost:    cost,
		}
	}
	return ledger
}

// NetBalance suma la contribución firmada de cada entrada. Es la variación neta dentro de la
// ventana mostrada; solo coincide con el stock actual si la ventana cubre todo el historial.
func NetBalance(ledger []entity.LedgerEntry) decimal.Decimal {
	net := decimal.Zero
	for i := range ledger {
		net = net.Add(Contribution(&ledger[i].MovementRecord))
	}
	return net
}

// Contribution cantidad con signo: positiva en entradas, negativa en salidas.
func Contribution(r *entity.MovementRecord) decimal.Decimal {
	if r.Direction() == entity.Inbound {
		return r.Quantity
	}
	return r.Quantity.Neg()
}

// Subtotal cantidad × valor unitario; valor unitario nulo cuenta como 0.
func Subtotal(r *entity.MovementRecord) decimal.Decimal {
	if !r.UnitValue.Valid {
		return decimal.Zero
	}
	return r.Quantity.Mul(r.UnitValue.Decimal)
}

// DocumentTotal suma los subtotales de los movimientos de un documento (pedido).
func DocumentTotal(records []*entity.MovementRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r != nil {
			total = total.Add(Subtotal(r))
		}
	}
	return total
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRecord representa un movimiento de stock tal como lo entrega el servicio de consulta.
// Es de solo lectura: pertenece al backend y no se modifica localmente.
type MovementRecord struct {
	ProductID      string
	Timestamp      time.Time
	OperationLabel string        // etiqueta original (tipoOperacao)
	Operation      OperationKind // clasificado al ingresar
	DocumentNumber string
	Quantity       decimal.Decimal     // magnitud; el signo se infiere de Operation
	UnitValue      decimal.NullDecimal // puede venir nulo
}

// Direction devuelve la dirección del movimiento según su tipo.
func (m *MovementRecord) Direction() Direction {
	return m.Operation.Direction()
}

// LedgerEntry es un MovementRecord con el saldo acumulado (kardex). Derivado, nunca persistido.
type LedgerEntry struct {
	MovementRecord
	RunningBalance decimal.Decimal
	AverageCost    decimal.Decimal // costo medio ponderado tras este movimiento
}

// DateRange rango opcional de fechas calendario, inclusivo en ambos extremos.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero indica que no hay límites (historial completo).
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Valid es falso cuando From es posterior a To.
func (r DateRange) Valid() bool {
	if r.From == nil || r.To == nil {
		return true
	}
	return !r.From.After(*r.To)
}

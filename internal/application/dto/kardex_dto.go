package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KardexEntryDTO una línea del kardex (más reciente primero).
type KardexEntryDTO struct {
	Date           time.Time        `json:"date"`
	Operation      string           `json:"operation"`      // etiqueta original del backend
	OperationKind  string           `json:"operation_kind"` // COMPRA, VENDA, ..., DESCONHECIDA
	Direction      string           `json:"direction"`      // ENTRADA | SAIDA
	DocumentNumber string           `json:"document_number"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitValue      *decimal.Decimal `json:"unit_value"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	Balance        decimal.Decimal  `json:"balance"`
	AverageCost    decimal.Decimal  `json:"average_cost"`
}

// KardexResponse kardex de un producto para el rango pedido.
// CurrentQuantity es el stock almacenado del producto (autoritativo); NetChangeInPeriod es la
// variación neta de las entradas listadas y solo coincide con el stock si el rango es el historial completo.
type KardexResponse struct {
	Product           ProductResponse  `json:"product"`
	From              *string          `json:"from,omitempty"`
	To                *string          `json:"to,omitempty"`
	FullHistory       bool             `json:"full_history"`
	CurrentQuantity   decimal.Decimal  `json:"current_quantity"`
	NetChangeInPeriod decimal.Decimal  `json:"net_change_in_period"`
	Entries           []KardexEntryDTO `json:"entries"`
}

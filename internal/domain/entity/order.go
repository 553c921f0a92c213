package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pedido.
const (
	OrderKindPurchase = "compra"
	OrderKindSale     = "venda"
	OrderKindReturn   = "devolucao" // devolución de venta (entrada); se registra como pedido de venta
)

// StockOperationID identificador de operacaoEstoque en el backend para cada tipo de pedido.
func StockOperationID(kind string) int {
	switch kind {
	case OrderKindPurchase:
		return 1
	case OrderKindReturn:
		return 3
	default:
		return 2
	}
}

// OrderItem línea de un pedido.
type OrderItem struct {
	ProductID string
	Quantity  decimal.Decimal
	UnitValue decimal.Decimal
}

// Order pedido de compra o venta. PartyID es el proveedor (compra) o el cliente (venta/devolución).
type Order struct {
	Kind           string
	DocumentNumber string
	Date           time.Time
	PartyID        string
	PartyName      string
	Items          []OrderItem
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// RegisterOrderRequest body para POST /api/orders/{purchases,sales,returns}.
// PartyID es el proveedor en compras y el cliente en ventas y devoluciones.
type RegisterOrderRequest struct {
	DocumentNumber string             `json:"document_number"`
	Date           *time.Time         `json:"date,omitempty"` // por defecto ahora
	PartyID        string             `json:"party_id"`
	Items          []OrderItemRequest `json:"items"`
}

// OrderResponse pedido en listados.
type OrderResponse struct {
	Kind           string    `json:"kind"`
	DocumentNumber string    `json:"document_number"`
	Date           time.Time `json:"date"`
	PartyID        string    `json:"party_id,omitempty"`
	PartyName      string    `json:"party_name,omitempty"`
}

// DocumentResponse movimientos de un documento con su total (Σ cantidad × valor unitario).
type DocumentResponse struct {
	DocumentNumber string            `json:"document_number"`
	Operation      string            `json:"operation"`
	Total          decimal.Decimal   `json:"total"`
	Items          []DocumentItemDTO `json:"items"`
}

// DocumentItemDTO movimiento de un documento.
type DocumentItemDTO struct {
	ProductID     string           `json:"product_id"`
	Date          time.Time        `json:"date"`
	OperationKind string           `json:"operation_kind"`
	Direction     string           `json:"direction"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitValue     *decimal.Decimal `json:"unit_value"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
}

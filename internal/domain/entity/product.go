package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo del backend ERP.
// Quantity es el stock actual almacenado por el backend (fuente autoritativa).
type Product struct {
	ID        string
	Code      string
	Name      string
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	Quantity  decimal.Decimal
}

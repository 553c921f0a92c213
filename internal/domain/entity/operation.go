package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Direction indica si un movimiento aumenta o disminuye el stock.
type Direction int

const (
	Outbound Direction = -1 // salida
	Inbound  Direction = 1  // entrada
)

// String devuelve "ENTRADA" o "SAIDA".
func (d Direction) String() string {
	if d == Inbound {
		return "ENTRADA"
	}
	return "SAIDA"
}

// OperationKind enumeración cerrada de tipos de operación de stock.
type OperationKind string

const (
	OperationCompra       OperationKind = "COMPRA"
	OperationVenda        OperationKind = "VENDA"
	OperationEntrada      OperationKind = "ENTRADA"
	OperationSaida        OperationKind = "SAIDA"
	OperationDevolucao    OperationKind = "DEVOLUCAO"
	OperationDesconhecida OperationKind = "DESCONHECIDA"
)

var operationDirections = map[OperationKind]Direction{
	OperationCompra:       Inbound,
	OperationEntrada:      Inbound,
	OperationDevolucao:    Inbound,
	OperationVenda:        Outbound,
	OperationSaida:        Outbound,
	OperationDesconhecida: Outbound, // política: etiqueta no reconocida descuenta stock
}

// Direction devuelve la dirección asociada al tipo. Tipos fuera de la enumeración son salida.
func (k OperationKind) Direction() Direction {
	if d, ok := operationDirections[k]; ok {
		return d
	}
	return Outbound
}

// Known indica si el tipo pertenece a la enumeración y no es DESCONHECIDA.
func (k OperationKind) Known() bool {
	_, ok := operationDirections[k]
	return ok && k != OperationDesconhecida
}

var upper = cases.Upper(language.Und)

// ParseOperation clasifica la etiqueta libre del backend (tipoOperacao) en un OperationKind.
// Las subcadenas de entrada (COMPRA, ENTRADA, DEVOLU) se evalúan primero, de modo que
// "DEVOLUCAO VENDA" es entrada.
func ParseOperation(label string) OperationKind {
	u := upper.String(label)
	switch {
	case strings.Contains(u, "COMPRA"):
		return OperationCompra
	case strings.Contains(u, "ENTRADA"):
		return OperationEntrada
	case strings.Contains(u, "DEVOLU"):
		return OperationDevolucao
	}
	plain := stripAccents(u)
	switch {
	case strings.Contains(plain, "VENDA"):
		return OperationVenda
	case strings.Contains(plain, "SAIDA"):
		return OperationSaida
	}
	return OperationDesconhecida
}

// stripAccents quita marcas diacríticas ("SAÍDA" -> "SAIDA").
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

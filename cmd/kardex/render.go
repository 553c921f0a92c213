package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	danger    = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle     = lipgloss.NewStyle().Foreground(special)
	errorStyle  = lipgloss.NewStyle().Foreground(danger)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(highlight).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// columnas numéricas alineadas a la derecha: Qtd, V.Unit, Subtotal, Saldo, Custo médio
var numericCols = map[int]bool{3: true, 4: true, 5: true, 6: true, 7: true}

func renderKardex(k *dto.KardexResponse) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  [%s]", k.Product.Name, k.Product.ID)))
	b.WriteString("\n")
	period := "histórico completo"
	if !k.FullHistory {
		period = fmt.Sprintf("%s → %s", deref(k.From, "início"), deref(k.To, "hoje"))
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("período: %s · estoque atual: %s · variação no período: %s",
		period, k.CurrentQuantity.StringFixed(2), k.NetChangeInPeriod.StringFixed(2))))
	b.WriteString("\n")

	rows := make([][]string, 0, len(k.Entries))
	outbound := make(map[int]bool)
	for i, e := range k.Entries {
		qty := e.Quantity.StringFixed(2)
		if e.Direction == "SAIDA" {
			qty = "-" + qty
			outbound[i] = true
		}
		date := "—"
		if !e.Date.IsZero() {
			date = e.Date.Format("02/01/2006 15:04")
		}
		rows = append(rows, []string{
			date, e.Operation, e.DocumentNumber, qty, money(e.UnitValue), e.Subtotal.StringFixed(2), e.Balance.StringFixed(2),
			e.AverageCost.StringFixed(2),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(subtle)).
		Headers("Data", "Operação", "Documento", "Qtd", "V. Unit", "Subtotal", "Saldo", "Custo médio").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			s := cellStyle
			if numericCols[col] {
				s = s.Align(lipgloss.Right)
			}
			if col == 3 && outbound[row] {
				s = s.Foreground(danger)
			}
			return s
		})
	b.WriteString(t.Render())
	if len(k.Entries) == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("nenhuma movimentação no período"))
	}
	return b.String()
}

func money(v *decimal.Decimal) string {
	if v == nil {
		return "—"
	}
	return v.StringFixed(2)
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

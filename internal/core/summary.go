package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DaySummary holds the totals of one day file.
type DaySummary struct {
	Count   int
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
}

// Balance is inflows minus outflows.
func (s DaySummary) Balance() decimal.Decimal {
	return s.Inflow.Sub(s.Outflow)
}

func (s DaySummary) String() string {
	return fmt.Sprintf("Entradas: R$%s, Saídas: R$%s, Saldo: R$%s",
		FormatAmount(s.Inflow), FormatAmount(s.Outflow), FormatAmount(s.Balance()))
}

// Summarize totals movements by kind. Amounts are summed as recorded, so a
// negative inflow lowers the inflow total.
func Summarize(movements []Movement) DaySummary {
	s := DaySummary{Inflow: decimal.Zero, Outflow: decimal.Zero}
	for _, m := range movements {
		s.Count++
		switch m.Kind {
		case Inflow:
			s.Inflow = s.Inflow.Add(m.Amount)
		case Outflow:
			s.Outflow = s.Outflow.Add(m.Amount)
		}
	}
	return s
}

package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/yurifrl/nfesales/pkg/models"
)

// NoData is the notice returned when a load operation extracted nothing.
const NoData = "Nenhum dado de venda encontrado nos arquivos."

// Summarize formats the load-operation report: total items, days with sales
// (one line per day in first-seen order), and the week/month distribution.
// Weeks follow the ISO-8601 calendar; a date that does not parse is left out
// of the week set but still counts as a day and a month.
func Summarize(total int, perDay *models.DayCounter, dates []string) string {
	if total == 0 {
		return NoData
	}

	weeks := make(map[int]struct{})
	months := make(map[string]struct{})
	for _, d := range dates {
		if len(d) >= 7 {
			months[d[:7]] = struct{}{}
		}
		if t, err := time.Parse("2006-01-02", d); err == nil {
			_, week := t.ISOWeek()
			weeks[week] = struct{}{}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d item(s) carregado(s)\n", total)
	fmt.Fprintf(&b, "%d dia(s) com vendas\n", perDay.Len())
	b.WriteString("Produtos vendidos por dia:\n")
	for _, day := range perDay.Days() {
		fmt.Fprintf(&b, "%s: %d item(s)\n", day, perDay.Count(day))
	}
	fmt.Fprintf(&b, "\nDistribuídos em %d semana(s) e %d mês(es)", len(weeks), len(months))
	return b.String()
}

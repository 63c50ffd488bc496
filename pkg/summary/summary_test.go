package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurifrl/nfesales/pkg/models"
)

func counterFor(dates ...string) *models.DayCounter {
	c := models.NewDayCounter()
	for _, d := range dates {
		c.Inc(d)
	}
	return c
}

func TestSummarizeNoData(t *testing.T) {
	assert.Equal(t, NoData, Summarize(0, models.NewDayCounter(), nil))
}

func TestSummarizeFormat(t *testing.T) {
	dates := []string{"2024-03-10", "2024-03-10", "2024-03-11"}
	got := Summarize(3, counterFor(dates...), dates)

	want := "3 item(s) carregado(s)\n" +
		"2 dia(s) com vendas\n" +
		"Produtos vendidos por dia:\n" +
		"2024-03-10: 2 item(s)\n" +
		"2024-03-11: 1 item(s)\n" +
		"\nDistribuídos em 1 semana(s) e 1 mês(es)"
	assert.Equal(t, want, got)
}

func TestDayLinesFollowFirstSeenOrder(t *testing.T) {
	dates := []string{"2024-03-11", "2024-03-10", "2024-03-11"}
	got := Summarize(3, counterFor(dates...), dates)
	assert.Contains(t, got, "2024-03-11: 2 item(s)\n2024-03-10: 1 item(s)")
}

func TestWeekAndMonthDistribution(t *testing.T) {
	// 2024-01-01 and 2024-01-07 share ISO week 1 (weeks start Monday);
	// 2024-02-01 falls in week 5.
	dates := []string{"2024-01-01", "2024-01-07", "2024-02-01"}
	got := Summarize(3, counterFor(dates...), dates)
	assert.Contains(t, got, "Distribuídos em 2 semana(s) e 2 mês(es)")
}

func TestWeekNumbersCollapseAcrossYears(t *testing.T) {
	// 2024-12-30 belongs to ISO week 1 of 2025; only the week number enters
	// the distinct set, so it collapses with week 1 of 2024.
	dates := []string{"2024-01-01", "2024-12-30"}
	got := Summarize(2, counterFor(dates...), dates)
	assert.Contains(t, got, "Distribuídos em 1 semana(s) e 2 mês(es)")
}

func TestUnparsableDateStillCountsAsDayAndMonth(t *testing.T) {
	dates := []string{"2024-03-10", "garbage-in"}
	got := Summarize(2, counterFor(dates...), dates)
	assert.Contains(t, got, "2 dia(s) com vendas")
	assert.Contains(t, got, "1 semana(s) e 2 mês(es)")
}

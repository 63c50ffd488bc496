package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurifrl/nfesales/pkg/models"
	"github.com/yurifrl/nfesales/pkg/render"
)

func TestAggregateDisplayRows(t *testing.T) {
	rows := []render.DisplayRow{
		{Product: "Café", Quantity: 2, Value: "R$ 10.00", Date: "2024-03-10"},
		{Product: "Açúcar", Quantity: 3, Value: "R$ 5.50", Date: "2024-03-10"},
	}

	totals := Aggregate(rows, "R$")
	assert.Equal(t, 5.0, totals.Quantity)
	assert.Equal(t, 15.5, totals.Value)
	assert.Zero(t, totals.Skipped)
}

func TestAggregateStripsThousandSeparators(t *testing.T) {
	rows := []render.DisplayRow{
		{Quantity: 1, Value: "R$ 1,234.50"},
	}

	totals := Aggregate(rows, "R$")
	assert.Equal(t, 1234.5, totals.Value)
}

func TestAggregateExcludesIrrecoverableRows(t *testing.T) {
	rows := []render.DisplayRow{
		{Quantity: 2, Value: "R$ 10.00"},
		{Quantity: 7, Value: "R$ dez reais"},
	}

	totals := Aggregate(rows, "R$")
	assert.Equal(t, 2.0, totals.Quantity)
	assert.Equal(t, 10.0, totals.Value)
	assert.Equal(t, 1, totals.Skipped)
}

func TestAggregateRecordsUsesUnderlyingNumerics(t *testing.T) {
	records := []models.SaleRecord{
		{Product: "Café", Quantity: 2, ValueSold: 10, SaleDate: "2024-03-10"},
		{Product: "Açúcar", Quantity: 3, ValueSold: 5.5, SaleDate: "2024-03-10"},
	}
	rows := render.Rows(records, "", "R$")

	totals := AggregateRecords(records, rows, "R$")
	assert.Equal(t, 5.0, totals.Quantity)
	assert.Equal(t, 15.5, totals.Value)
	assert.Zero(t, totals.Skipped)
}

func TestAggregateRecordsSkipsUnmatchedRows(t *testing.T) {
	records := []models.SaleRecord{
		{Product: "Café", Quantity: 2, ValueSold: 10, SaleDate: "2024-03-10"},
	}
	rows := []render.DisplayRow{
		{Product: "Café", Quantity: 2, Value: "R$ 10.00", Date: "2024-03-10"},
		{Product: "Fantasma", Quantity: 1, Value: "R$ 1.00", Date: "2024-03-10"},
	}

	totals := AggregateRecords(records, rows, "R$")
	assert.Equal(t, 2.0, totals.Quantity)
	assert.Equal(t, 10.0, totals.Value)
	assert.Equal(t, 1, totals.Skipped)
}

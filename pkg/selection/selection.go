package selection

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/nfesales/pkg/models"
	"github.com/yurifrl/nfesales/pkg/render"
)

// Totals sums an arbitrary selection of displayed rows. Skipped counts rows
// whose value column could not be turned back into a number (or, for the
// record-backed path, rows matching no stored record); those rows are left
// out of both sums, so a nonzero Skipped means the totals under-report.
type Totals struct {
	Quantity float64
	Value    float64
	Skipped  int
}

// Aggregate reverses the display formatting of the selected rows and sums
// quantity and monetary value. It never fails: irrecoverable rows are only
// excluded and counted.
func Aggregate(rows []render.DisplayRow, symbol string) Totals {
	var totals Totals
	value := decimal.Zero
	for _, row := range rows {
		v, err := parseValue(row.Value, symbol)
		if err != nil {
			totals.Skipped++
			continue
		}
		totals.Quantity += row.Quantity
		value = value.Add(v)
	}
	totals.Value = value.InexactFloat64()
	return totals
}

// AggregateRecords uses each display row only as a lookup key into the
// underlying records and sums the record numerics directly, sidestepping the
// formatted strings entirely.
func AggregateRecords(records []models.SaleRecord, rows []render.DisplayRow, symbol string) Totals {
	var totals Totals
	value := decimal.Zero
	for _, row := range rows {
		record, ok := lookup(records, row, symbol)
		if !ok {
			totals.Skipped++
			continue
		}
		totals.Quantity += record.Quantity
		value = value.Add(decimal.NewFromFloat(record.ValueSold))
	}
	totals.Value = value.InexactFloat64()
	return totals
}

func lookup(records []models.SaleRecord, row render.DisplayRow, symbol string) (models.SaleRecord, bool) {
	for _, r := range records {
		if r.Product == row.Product &&
			r.SaleDate == row.Date &&
			r.Quantity == row.Quantity &&
			symbol+" "+render.FormatValue(r.ValueSold) == row.Value {
			return r, true
		}
	}
	return models.SaleRecord{}, false
}

func parseValue(display, symbol string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.TrimPrefix(display, symbol))
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}

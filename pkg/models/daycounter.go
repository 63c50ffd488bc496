package models

// DayCounter maps a sale date to the number of line items recorded that day,
// remembering the order in which dates were first seen so summaries can list
// days in encounter order.
type DayCounter struct {
	counts map[string]int
	order  []string
}

func NewDayCounter() *DayCounter {
	return &DayCounter{counts: make(map[string]int)}
}

func (d *DayCounter) Inc(date string) {
	if _, ok := d.counts[date]; !ok {
		d.order = append(d.order, date)
	}
	d.counts[date]++
}

func (d *DayCounter) Count(date string) int {
	return d.counts[date]
}

// Days returns the distinct dates in first-seen order.
func (d *DayCounter) Days() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *DayCounter) Len() int {
	return len(d.order)
}

// Merge folds another counter into this one, preserving encounter order.
func (d *DayCounter) Merge(other *DayCounter) {
	for _, date := range other.order {
		if _, ok := d.counts[date]; !ok {
			d.order = append(d.order, date)
		}
		d.counts[date] += other.counts[date]
	}
}

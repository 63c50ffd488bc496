package models

// SaleRecord is one normalized invoice line. Records are never mutated after
// extraction; quantities and values are kept as parsed, negative included.
type SaleRecord struct {
	Product   string
	Quantity  float64
	ValueSold float64
	SaleDate  string // YYYY-MM-DD
}

// Store accumulates sale records across load operations. It is append-only
// and insertion-ordered: a line appearing in two loaded files yields two
// entries, and nothing is ever deduplicated or removed.
type Store struct {
	records []SaleRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(records ...SaleRecord) {
	s.records = append(s.records, records...)
}

// Records returns the accumulated records in insertion order. The returned
// slice is a copy so callers cannot reorder or rewrite the store.
func (s *Store) Records() []SaleRecord {
	out := make([]SaleRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	return len(s.records)
}

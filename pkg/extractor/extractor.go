package extractor

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/mapstructure"

	"github.com/yurifrl/nfesales/pkg/document"
	"github.com/yurifrl/nfesales/pkg/models"
)

// FallbackProduct is the name given to items whose product description is
// absent from the source document.
const FallbackProduct = "Desconhecido"

// ErrSchema marks a document whose fixed nfeProc/NFe/infNFe path is broken.
var ErrSchema = fmt.Errorf("invoice schema mismatch")

// ErrDate marks a document whose issue date cannot yield a YYYY-MM-DD value.
var ErrDate = fmt.Errorf("invalid issue date")

// Result carries everything one document contributed: the normalized
// records, the date of each record (all equal for a single invoice), the
// per-day counts, and how many items were dropped by coercion failures.
type Result struct {
	Records []models.SaleRecord
	Dates   []string
	PerDay  *models.DayCounter
	Skipped int
}

// Total is the number of successfully extracted items.
func (r *Result) Total() int {
	return len(r.Records)
}

type Extractor struct {
	logger   *log.Logger
	fallback string
}

func New(logger *log.Logger) *Extractor {
	return &Extractor{logger: logger, fallback: FallbackProduct}
}

// WithFallback overrides the product name used for items missing one.
func (e *Extractor) WithFallback(name string) *Extractor {
	if name != "" {
		e.fallback = name
	}
	return e
}

// Extract walks the fixed invoice path and emits one SaleRecord per item.
// A broken path or unusable issue date fails the whole document; a single
// item with an unparsable numeric field is skipped and its siblings survive.
func (e *Extractor) Extract(doc document.Document) (*Result, error) {
	info, err := navigate(map[string]any(doc), "nfeProc", "NFe", "infNFe")
	if err != nil {
		return nil, err
	}

	ide, err := navigate(info, "ide")
	if err != nil {
		return nil, err
	}
	saleDate, err := issueDate(ide["dhEmi"])
	if err != nil {
		return nil, err
	}

	items, err := itemList(info["det"])
	if err != nil {
		return nil, err
	}

	result := &Result{PerDay: models.NewDayCounter()}
	for i, item := range items {
		record, err := e.buildRecord(item, saleDate)
		if err != nil {
			e.logger.Debug("skipping item", "index", i, "error", err)
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, record)
		result.Dates = append(result.Dates, saleDate)
		result.PerDay.Inc(saleDate)
	}

	return result, nil
}

// navigate descends through nested mapping nodes, failing on the first key
// that is missing or not itself a mapping.
func navigate(node map[string]any, path ...string) (map[string]any, error) {
	for _, key := range path {
		v, ok := node[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrSchema, key)
		}
		node, ok = asMap(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a mapping", ErrSchema, key)
		}
	}
	return node, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case document.Document:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

// itemList normalizes the det node to a uniform slice at the boundary: a
// single item mapping becomes a one-element list, a list stays as is.
func itemList(v any) ([]map[string]any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrSchema, "det")
	}
	if single, ok := asMap(v); ok {
		return []map[string]any{single}, nil
	}
	many, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is neither item nor item list", ErrSchema, "det")
	}
	items := make([]map[string]any, 0, len(many))
	for _, entry := range many {
		m, ok := asMap(entry)
		if !ok {
			return nil, fmt.Errorf("%w: %q entry is not a mapping", ErrSchema, "det")
		}
		items = append(items, m)
	}
	return items, nil
}

// issueDate truncates an ISO-8601 date-time to its date portion. Anything
// shorter than a full date is unusable; there is no partial date.
func issueDate(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: dhEmi is not a string", ErrDate)
	}
	if len(s) < 10 {
		return "", fmt.Errorf("%w: dhEmi %q too short", ErrDate, s)
	}
	return s[:10], nil
}

// prodFields mirrors the product node. Weak typing lets qCom/vProd arrive as
// numeric strings (markup) or numbers (mapping format) alike; absence keeps
// the zero value.
type prodFields struct {
	XProd *string `mapstructure:"xProd"`
	QCom  float64 `mapstructure:"qCom"`
	VProd float64 `mapstructure:"vProd"`
}

func (e *Extractor) buildRecord(item map[string]any, saleDate string) (models.SaleRecord, error) {
	prod, ok := asMap(item["prod"])
	if !ok {
		return models.SaleRecord{}, fmt.Errorf("item has no product node")
	}

	var fields prodFields
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &fields,
	})
	if err != nil {
		return models.SaleRecord{}, err
	}
	if err := decoder.Decode(prod); err != nil {
		return models.SaleRecord{}, fmt.Errorf("coercing product fields: %w", err)
	}

	name := e.fallback
	if fields.XProd != nil && *fields.XProd != "" {
		name = *fields.XProd
	}

	return models.SaleRecord{
		Product:   name,
		Quantity:  fields.QCom,
		ValueSold: fields.VProd,
		SaleDate:  saleDate,
	}, nil
}

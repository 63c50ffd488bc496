package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clbanning/mxj/v2"
	jsoniter "github.com/json-iterator/go"
)

// Document is the generic nested mapping both serializations converge on:
// string keys over string leaves, nested Documents, or []any of nested
// Documents for repeated tags. A tag appearing once stays a single mapping;
// one-vs-many normalization belongs to the extractor, not here.
type Document map[string]any

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseXML converts nested-tag markup into a Document. Leaf values stay
// strings; numeric coercion is the extractor's job.
func ParseXML(data []byte) (Document, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, fmt.Errorf("malformed markup: %w", err)
	}
	return Document(m), nil
}

// ParseJSON loads the mapping format directly, no conversion step needed.
func ParseJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed mapping document: %w", err)
	}
	return doc, nil
}

// FromFile reads and decodes a document by extension. Unrecognized
// extensions return ErrUnsupported so callers can skip them silently.
func FromFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return ParseXML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, ErrUnsupported
	}
}

// ErrUnsupported marks a file whose extension is neither markup nor mapping.
var ErrUnsupported = fmt.Errorf("unsupported file extension")

package travelpack

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the inventory, seen as the
// document written by Encode.
//
// For instance "$[*].name" lists all names, and
// `$[?(@.location=="suitcase")].name` the names packed in the suitcase.
// Numbers come back as float64, as with encoding/json.
func (inv *Inventory) Query(path string) (any, error) {
	var buf bytes.Buffer
	if err := inv.Encode(&buf); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("cannot decode inventory document: %w", err)
	}

	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return v, nil
}

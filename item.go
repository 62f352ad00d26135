package travelpack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultLocation is where an item lives when no location is given.
const DefaultLocation = "home"

// ErrMalformedRecord is returned when persisted items cannot be decoded.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError details why a persisted item was rejected.
type RecordError struct {
	Field  string // offending field, empty if the record itself is not an object
	Reason string
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrMalformedRecord, e.Reason)
	}
	return fmt.Sprintf("%v: field %q %s", ErrMalformedRecord, e.Field, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrMalformedRecord }

// Item is a quantity of a named thing stored at a location.
//
// Items are values: the Inventory hands out copies, and mutating a copy
// never changes the inventory.
type Item struct {
	name     string
	quantity int
	location string
}

// NewItem returns an item. An empty location means DefaultLocation.
func NewItem(name string, quantity int, location string) Item {
	if location == "" {
		location = DefaultLocation
	}
	return Item{name: name, quantity: quantity, location: location}
}

// Name returns the item name, its case-sensitive identity.
func (it Item) Name() string { return it.name }

// Quantity returns how many units are held.
func (it Item) Quantity() int { return it.quantity }

// Location returns where the units are.
func (it Item) Location() string { return it.location }

// SetQuantity overwrites the quantity, without any floor.
func (it *Item) SetQuantity(q int) { it.quantity = q }

// SetLocation overwrites the location.
func (it *Item) SetLocation(loc string) { it.location = loc }

// AddQuantity adds n units.
func (it *Item) AddQuantity(n int) { it.quantity += n }

// RemoveQuantity removes n units, never going below zero.
func (it *Item) RemoveQuantity(n int) {
	it.quantity -= n
	if it.quantity < 0 {
		it.quantity = 0
	}
}

func (it Item) String() string {
	return fmt.Sprintf("%s (Qty: %d, Location: %s)", it.name, it.quantity, it.location)
}

// jitem is the persisted form of an Item.
type jitem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

// MarshalJSON implements the json.Marshaler interface.
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(jitem{Name: it.name, Quantity: it.quantity, Location: it.location})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// All three fields are required and must have the right JSON type; quantity
// must be an integer. Unknown fields are ignored.
func (it *Item) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return &RecordError{Reason: "is not a JSON object"}
	}

	name, err := stringField(fields, "name")
	if err != nil {
		return err
	}
	location, err := stringField(fields, "location")
	if err != nil {
		return err
	}

	raw, ok := fields["quantity"]
	if !ok {
		return &RecordError{Field: "quantity", Reason: "is missing"}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return &RecordError{Field: "quantity", Reason: "must be of type 'number'"}
	}
	num, ok := v.(json.Number)
	if !ok {
		return &RecordError{Field: "quantity", Reason: "must be of type 'number'"}
	}
	q, err := num.Int64()
	if err != nil {
		return &RecordError{Field: "quantity", Reason: fmt.Sprintf("must be an integer, got %s", num)}
	}

	*it = Item{name: name, quantity: int(q), location: location}
	return nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", &RecordError{Field: key, Reason: "is missing"}
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", &RecordError{Field: key, Reason: "must be of type 'string'"}
	}
	return *s, nil
}

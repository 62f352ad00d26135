package travelpack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// The inventory is persisted as a single, human-readable JSON array:
//
//	[
//	  {"name": "socks", "quantity": 2, "location": "home"},
//	  {"name": "socks", "quantity": 1, "location": "suitcase"}
//	]
//
// Items are written in inventory order, so that the file diffs nicely and a
// Save followed by a Load gives back the same sequence.

// Encode writes the inventory as an indented JSON array.
func (inv *Inventory) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	items := inv.items
	if items == nil {
		items = []Item{} // "[]" rather than "null"
	}
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("cannot encode inventory: %w", err)
	}
	return nil
}

// DecodeInventory reads an inventory written by Encode.
//
// The content must be exactly one JSON array. Every entry must be a valid item (see ErrMalformedRecord). Duplicate
// name/location pairs are merged on the way in.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	dec := json.NewDecoder(r)
	var raws []json.RawMessage
	if err := dec.Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: not a JSON array of items: %v", ErrMalformedRecord, err)
	}
	if raws == nil {
		return nil, fmt.Errorf("%w: not a JSON array of items: null", ErrMalformedRecord)
	}
	// The array must be the whole content.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected content after the JSON array", ErrMalformedRecord)
	}

	inv := NewInventory()
	for i, raw := range raws {
		var it Item
		if err := json.Unmarshal(raw, &it); err != nil {
			return nil, fmt.Errorf("item #%d: %w", i, err)
		}
		inv.Add(it)
	}
	return inv, nil
}

// Load replaces the inventory content with the one stored in filename.
//
// A missing file is not an error: the inventory is left unchanged, which is
// what a first run expects. Any other failure leaves the inventory unchanged
// too; nothing is committed until the whole file has been decoded.
func (inv *Inventory) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}

	loaded, err := DecodeInventory(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("format error in %q: %w", filename, err)
	}
	inv.items = loaded.items
	return nil
}

// Save writes the inventory to filename.
//
// The content goes to a temporary file in the same folder first, then
// replaces filename, so a failed save never leaves a truncated file behind.
// An existing file keeps its permissions, a new one gets 0644.
// The inventory itself is never modified by Save.
func (inv *Inventory) Save(filename string) error {
	var buf bytes.Buffer
	if err := inv.Encode(&buf); err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", filename, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	mode := fs.FileMode(0644)
	if fi, err := os.Stat(filename); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("cannot replace %q: %w", filename, err)
	}
	return nil
}

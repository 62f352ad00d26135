// Package travelpack keeps track of physical items and where they are: at
// home, in a suitcase, at the office...
//
// It is local-first: the whole inventory lives in a single JSON file that is
// easy to read, edit by hand and keep under version control.
//
// The core functionalities include:
//   - Item: a name, a quantity and a location.
//   - Inventory: an ordered collection of items where the same name at the
//     same location is always merged, and moving part of a stock splits it
//     across two locations.
//   - Persistence: encoding and decoding the inventory to and from JSON, with
//     a load that only commits a fully valid file.
//   - Query: JSONPath expressions evaluated against the inventory document.
//
// This package is the foundation of the `pack` command-line tool, which
// loads the inventory, runs exactly one command on it and saves it back.
package travelpack

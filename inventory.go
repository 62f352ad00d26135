package travelpack

import (
	"iter"
	"slices"
)

// All is the quantity to pass to Move to move every unit.
const All = -1

// Inventory is an ordered collection of items.
//
// An Inventory never holds two items with the same name and location: they are
// merged. The same name can be held at several locations. Order is insertion
// order, it is kept for listing and across Save and Load.
//
// Lookups by name only (Find, Remove, RemoveQuantity, UpdateQuantity,
// UpdateLocation) pick the first item with that name, whatever its location.
type Inventory struct {
	items []Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{items: make([]Item, 0)}
}

// index returns the position of the first item named name, or -1.
func (inv *Inventory) index(name string) int {
	return slices.IndexFunc(inv.items, func(it Item) bool { return it.name == name })
}

// indexAt returns the position of the item named name at location, or -1.
func (inv *Inventory) indexAt(name, location string) int {
	return slices.IndexFunc(inv.items, func(it Item) bool {
		return it.name == name && it.location == location
	})
}

// Add adds item, merging its quantity into an existing item with the same name
// and location.
func (inv *Inventory) Add(item Item) {
	if i := inv.indexAt(item.name, item.location); i >= 0 {
		inv.items[i].AddQuantity(item.quantity)
		return
	}
	inv.items = append(inv.items, item)
}

// Remove deletes the first item named name. It reports whether one was found.
func (inv *Inventory) Remove(name string) bool {
	i := inv.index(name)
	if i < 0 {
		return false
	}
	inv.items = slices.Delete(inv.items, i, i+1)
	return true
}

// RemoveQuantity takes amount units from the first item named name, deleting
// it once it is empty. It reports whether one was found.
func (inv *Inventory) RemoveQuantity(name string, amount int) bool {
	i := inv.index(name)
	if i < 0 {
		return false
	}
	inv.items[i].RemoveQuantity(amount)
	if inv.items[i].quantity <= 0 {
		inv.items = slices.Delete(inv.items, i, i+1)
	}
	return true
}

// Find returns a copy of the first item named name.
func (inv *Inventory) Find(name string) (Item, bool) {
	i := inv.index(name)
	if i < 0 {
		return Item{}, false
	}
	return inv.items[i], true
}

// FindMutable returns the first item named name for in-place changes.
// The pointer is only valid until the next call that adds or removes items.
func (inv *Inventory) FindMutable(name string) (*Item, bool) {
	i := inv.index(name)
	if i < 0 {
		return nil, false
	}
	return &inv.items[i], true
}

// FindAll returns copies of every item named name, one per location.
func (inv *Inventory) FindAll(name string) []Item {
	var found []Item
	for _, it := range inv.items {
		if it.name == name {
			found = append(found, it)
		}
	}
	return found
}

// UpdateQuantity sets the quantity of the first item named name.
// The value is trusted as is.
func (inv *Inventory) UpdateQuantity(name string, quantity int) bool {
	it, ok := inv.FindMutable(name)
	if !ok {
		return false
	}
	it.SetQuantity(quantity)
	return true
}

// UpdateLocation relocates the first item named name.
func (inv *Inventory) UpdateLocation(name, location string) bool {
	i := inv.index(name)
	if i < 0 {
		return false
	}
	inv.relocate(i, location)
	return true
}

// relocate moves the whole item at i to location. If the item already exists
// there, quantities are merged and the item at i disappears.
func (inv *Inventory) relocate(i int, location string) {
	if j := inv.indexAt(inv.items[i].name, location); j >= 0 && j != i {
		inv.items[j].AddQuantity(inv.items[i].quantity)
		inv.items = slices.Delete(inv.items, i, i+1)
		return
	}
	inv.items[i].SetLocation(location)
}

// Move transfers quantity units of name from one location to another.
//
// Passing All, or at least the stock held at from, moves the item itself.
// Otherwise the item is split: the units left stay at from, the moved ones
// are added at to. Move reports false, without any change, when name is not
// held at from or when quantity is neither All nor positive.
func (inv *Inventory) Move(name, from, to string, quantity int) bool {
	i := inv.indexAt(name, from)
	if i < 0 {
		return false
	}
	if quantity != All && quantity <= 0 {
		return false
	}

	if quantity == All || quantity >= inv.items[i].quantity {
		inv.relocate(i, to)
		return true
	}

	inv.items[i].RemoveQuantity(quantity)
	inv.Add(NewItem(name, quantity, to))
	return true
}

// ByLocation returns copies of the items stored at location, in order.
func (inv *Inventory) ByLocation(location string) []Item {
	found := make([]Item, 0)
	for _, it := range inv.items {
		if it.location == location {
			found = append(found, it)
		}
	}
	return found
}

// Items iterates over all items, in order.
func (inv *Inventory) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range inv.items {
			if !yield(it) {
				return
			}
		}
	}
}

// TotalItems returns the number of items, not the number of units.
func (inv *Inventory) TotalItems() int { return len(inv.items) }

// TotalQuantity returns the number of units of name across all locations.
func (inv *Inventory) TotalQuantity(name string) int {
	total := 0
	for _, it := range inv.items {
		if it.name == name {
			total += it.quantity
		}
	}
	return total
}

// Location summarizes what is stored at one place.
type Location struct {
	Name  string
	Items int // distinct items
	Units int // sum of quantities
}

// Locations lists every location in use, in the order they first appear.
func (inv *Inventory) Locations() []Location {
	var locs []Location
	for _, it := range inv.items {
		i := slices.IndexFunc(locs, func(l Location) bool { return l.Name == it.location })
		if i < 0 {
			locs = append(locs, Location{Name: it.location})
			i = len(locs) - 1
		}
		locs[i].Items++
		locs[i].Units += it.quantity
	}
	return locs
}

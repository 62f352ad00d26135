package renderer

import (
	"github.com/etnz/travelpack"
)

// Row is one item line in a table.
type Row struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

func rows(items []travelpack.Item) (rows []Row, units int) {
	rows = make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Row{Name: it.Name(), Quantity: it.Quantity(), Location: it.Location()})
		units += it.Quantity()
	}
	return rows, units
}

// Items is a titled list of items.
type Items struct {
	Title string `json:"title"`
	// Empty is the message shown when there are no rows.
	Empty string `json:"empty"`
	Rows  []Row  `json:"rows"`
	Units int    `json:"units"`
}

// NewAllItems lists every item of the inventory.
func NewAllItems(inv *travelpack.Inventory) *Items {
	var items []travelpack.Item
	for it := range inv.Items() {
		items = append(items, it)
	}
	r, units := rows(items)
	return &Items{Title: "All Items", Empty: "No items in inventory.", Rows: r, Units: units}
}

// NewLocationItems lists the items stored at location.
func NewLocationItems(inv *travelpack.Inventory, location string) *Items {
	r, units := rows(inv.ByLocation(location))
	return &Items{
		Title: "Items at " + location,
		Empty: "No items at " + location + ".",
		Rows:  r,
		Units: units,
	}
}

// Found is the result of a search by name.
type Found struct {
	Name  string `json:"name"`
	Rows  []Row  `json:"rows"`
	Units int    `json:"units"`
}

// NewFound builds a search result out of the matching items, possibly none.
func NewFound(name string, items ...travelpack.Item) *Found {
	r, units := rows(items)
	return &Found{Name: name, Rows: r, Units: units}
}

// Locations summarizes every location.
type Locations struct {
	Rows []travelpack.Location `json:"rows"`
}

// NewLocations summarizes the inventory per location.
func NewLocations(inv *travelpack.Inventory) *Locations {
	return &Locations{Rows: inv.Locations()}
}

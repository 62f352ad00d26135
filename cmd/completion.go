package cmd

import (
	"slices"

	"github.com/etnz/travelpack"
	"github.com/etnz/travelpack/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion for the program called name. When the
// shell asks for completions, or when COMP_INSTALL=1 or COMP_UNINSTALL=1 is
// set, it prints and exits; otherwise it returns and the program runs as usual.
func Complete(name string) {
	completionCommand().Complete(name)
}

func completionCommand() *complete.Command {
	items := complete.PredictFunc(func(prefix string) []string { return itemNames(completionInventory()) })
	locations := complete.PredictFunc(func(prefix string) []string { return locationNames(completionInventory()) })
	both := complete.PredictFunc(func(prefix string) []string {
		inv := completionInventory()
		return append(itemNames(inv), locationNames(inv)...)
	})

	var topics complete.Predictor = predict.Nothing
	if names, err := docs.Topics(); err == nil {
		topics = predict.Set(names)
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"inventory-file": predict.Files("*.json"),
			"v":              predict.Nothing,
			"raw":            predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add":       {Args: both},
			"remove":    {Args: items},
			"move":      {Args: both},
			"set":       {Args: items},
			"relocate":  {Args: both},
			"list":      {Args: locations},
			"find":      {Args: items, Flags: map[string]complete.Predictor{"a": predict.Nothing}},
			"locations": {Args: predict.Nothing},
			"query":     {Args: predict.Nothing},
			"topic":     {Args: topics},
			"assist":    {Flags: map[string]complete.Predictor{"model": predict.Nothing}},
			"help":      {},
			"flags":     {},
			"commands":  {},
		},
	}
}

// completionInventory loads the inventory quietly, completion must never fail.
func completionInventory() *travelpack.Inventory {
	inv := travelpack.NewInventory()
	if c, err := LoadConfig(); err == nil {
		config = c
	}
	if err := inv.Load(InventoryFile()); err != nil {
		return travelpack.NewInventory()
	}
	return inv
}

// itemNames lists the distinct item names, sorted.
func itemNames(inv *travelpack.Inventory) []string {
	var names []string
	for item := range inv.Items() {
		names = append(names, item.Name())
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// locationNames lists the locations in use, sorted.
func locationNames(inv *travelpack.Inventory) []string {
	var names []string
	for _, loc := range inv.Locations() {
		names = append(names, loc.Name)
	}
	slices.Sort(names)
	return names
}

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelpack"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add units of an item to a location" }
func (*addCmd) Usage() string {
	return `pack add <name> <quantity> [<location>]

  Adds <quantity> units of <name> at <location> (default: home).
  Units merge into the existing record if the item is already there.
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (*addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 || f.NArg() > 3 {
		return usageError(f, "add expects a name, a quantity and an optional location")
	}
	name := f.Arg(0)
	quantity, err := parseQuantity(f.Arg(1))
	if err != nil {
		return usageError(f, "%v", err)
	}
	location := travelpack.DefaultLocation
	if f.NArg() == 3 {
		location = f.Arg(2)
	}

	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}
	inv.Add(travelpack.NewItem(name, quantity, location))
	if status := save(inv); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Fprintf(stdout, "Added %d %s to %s.\n", quantity, name, location)
	return subcommands.ExitSuccess
}

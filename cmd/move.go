package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelpack"
	"github.com/google/subcommands"
)

type moveCmd struct{}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "move units of an item from one location to another" }
func (*moveCmd) Usage() string {
	return `pack move <name> <quantity|all> <from> <to>

  Moves <quantity> units of <name> from <from> to <to>. Use "all", or the
  full quantity, to move the whole record.
`
}

func (*moveCmd) SetFlags(f *flag.FlagSet) {}

func (*moveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 4 {
		return usageError(f, "move expects a name, a quantity, a source and a destination")
	}
	name, from, to := f.Arg(0), f.Arg(2), f.Arg(3)
	quantity := travelpack.All
	if f.Arg(1) != "all" {
		var err error
		if quantity, err = parseQuantity(f.Arg(1)); err != nil {
			return usageError(f, "%v", err)
		}
	}

	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}
	if !inv.Move(name, from, to, quantity) {
		fmt.Fprintf(stdout, "Cannot move %s: it is not at %s, or not in that quantity.\n", name, from)
		return subcommands.ExitSuccess
	}
	if status := save(inv); status != subcommands.ExitSuccess {
		return status
	}

	if quantity == travelpack.All {
		fmt.Fprintf(stdout, "Moved all %s from %s to %s.\n", name, from, to)
	} else {
		fmt.Fprintf(stdout, "Moved %d %s from %s to %s.\n", quantity, name, from, to)
	}
	return subcommands.ExitSuccess
}

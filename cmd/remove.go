package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an item, or some units of it" }
func (*removeCmd) Usage() string {
	return `pack remove <name> [<quantity>]

  Without quantity, deletes the first record named <name>.
  With quantity, takes that many units from it; the record is deleted
  when nothing is left.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (*removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		return usageError(f, "remove expects a name and an optional quantity")
	}
	name := f.Arg(0)
	quantity := 0
	if f.NArg() == 2 {
		var err error
		if quantity, err = parseQuantity(f.Arg(1)); err != nil {
			return usageError(f, "%v", err)
		}
	}

	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}

	var found bool
	if quantity == 0 {
		found = inv.Remove(name)
	} else {
		found = inv.RemoveQuantity(name, quantity)
	}
	if !found {
		fmt.Fprintf(stdout, "Item %q not found.\n", name)
		return subcommands.ExitSuccess
	}
	if status := save(inv); status != subcommands.ExitSuccess {
		return status
	}

	if quantity == 0 {
		fmt.Fprintf(stdout, "Removed %s.\n", name)
	} else {
		fmt.Fprintf(stdout, "Removed %d %s.\n", quantity, name)
	}
	return subcommands.ExitSuccess
}

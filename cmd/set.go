package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
)

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set the quantity of an item" }
func (*setCmd) Usage() string {
	return `pack set <name> <quantity>

  Sets the quantity of the first record named <name>. Setting it to 0
  removes the record.
`
}

func (*setCmd) SetFlags(f *flag.FlagSet) {}

func (*setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError(f, "set expects a name and a quantity")
	}
	name := f.Arg(0)
	quantity, err := strconv.Atoi(f.Arg(1))
	if err != nil || quantity < 0 {
		return usageError(f, "quantity must be a non negative integer, got %q", f.Arg(1))
	}

	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}

	var found bool
	if quantity == 0 {
		found = inv.Remove(name)
	} else {
		found = inv.UpdateQuantity(name, quantity)
	}
	if !found {
		fmt.Fprintf(stdout, "Item %q not found.\n", name)
		return subcommands.ExitSuccess
	}
	if status := save(inv); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Fprintf(stdout, "%s set to %d.\n", name, quantity)
	return subcommands.ExitSuccess
}

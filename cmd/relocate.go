package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type relocateCmd struct{}

func (*relocateCmd) Name() string     { return "relocate" }
func (*relocateCmd) Synopsis() string { return "change the location of an item" }
func (*relocateCmd) Usage() string {
	return `pack relocate <name> <location>

  Moves the first record named <name>, whatever its location, to <location>.
  Use move to pick the source location or to split a record.
`
}

func (*relocateCmd) SetFlags(f *flag.FlagSet) {}

func (*relocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError(f, "relocate expects a name and a location")
	}
	name, location := f.Arg(0), f.Arg(1)

	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}
	if !inv.UpdateLocation(name, location) {
		fmt.Fprintf(stdout, "Item %q not found.\n", name)
		return subcommands.ExitSuccess
	}
	if status := save(inv); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Fprintf(stdout, "%s is now at %s.\n", name, location)
	return subcommands.ExitSuccess
}

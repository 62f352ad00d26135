package cmd

import (
	"context"
	"flag"

	"github.com/etnz/travelpack/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list items, everywhere or at one location" }
func (*listCmd) Usage() string {
	return `pack list [<location>]

  Lists every item in storage order, or only the items at <location>.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return usageError(f, "list expects at most one location")
	}
	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}

	if f.NArg() == 1 {
		printMarkdown(renderer.ItemsMarkdown(renderer.NewLocationItems(inv, f.Arg(0))))
	} else {
		printMarkdown(renderer.ItemsMarkdown(renderer.NewAllItems(inv)))
	}
	return subcommands.ExitSuccess
}

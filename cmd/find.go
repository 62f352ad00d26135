package cmd

import (
	"context"
	"flag"

	"github.com/etnz/travelpack"
	"github.com/etnz/travelpack/renderer"
	"github.com/google/subcommands"
)

type findCmd struct {
	all bool
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "find where an item is" }
func (*findCmd) Usage() string {
	return `pack find [-a] <name>

  Shows the first record named <name>. With -a, shows every location
  holding it.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "a", false, "show every location holding the item")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(f, "find expects a name")
	}
	name := f.Arg(0)
	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}

	var items []travelpack.Item
	if c.all {
		items = inv.FindAll(name)
	} else if item, ok := inv.Find(name); ok {
		items = append(items, item)
	}
	printMarkdown(renderer.FoundMarkdown(renderer.NewFound(name, items...)))
	return subcommands.ExitSuccess
}

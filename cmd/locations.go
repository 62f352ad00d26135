package cmd

import (
	"context"
	"flag"

	"github.com/etnz/travelpack/renderer"
	"github.com/google/subcommands"
)

type locationsCmd struct{}

func (*locationsCmd) Name() string     { return "locations" }
func (*locationsCmd) Synopsis() string { return "summarize every location in use" }
func (*locationsCmd) Usage() string {
	return `pack locations

  Lists the locations holding at least one item, with their number of
  items and units.
`
}

func (*locationsCmd) SetFlags(f *flag.FlagSet) {}

func (*locationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}
	printMarkdown(renderer.LocationsMarkdown(renderer.NewLocations(inv)))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/travelpack/renderer"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query over the inventory" }
func (*queryCmd) Usage() string {
	return `pack query <jsonpath>

  Evaluates <jsonpath> against the inventory file content, for instance:

    pack query '$[?(@.location=="suitcase")].name'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(f, "query expects one JSONPath expression")
	}
	path := f.Arg(0)
	inv, err := DecodeInventory()
	if err != nil {
		return loadFailure(err)
	}

	result, err := inv.Query(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.QueryMarkdown(path, result))
	return subcommands.ExitSuccess
}

// Command pack keeps track of what you own and where it is: at home, in a
// suitcase, in a backpack.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/travelpack/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	cmd.Complete(commander.Name())

	flag.Parse()
	if err := cmd.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	if flag.NArg() == 0 {
		commander.Explain(os.Stdout)
		os.Exit(int(subcommands.ExitSuccess))
	}

	if name := flag.Arg(0); !cmd.IsCommand(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

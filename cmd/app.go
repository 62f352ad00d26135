// Package cmd implements the CLI application to manage a travel inventory.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/travelpack"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addCmd{}, "items")
	c.Register(&removeCmd{}, "items")
	c.Register(&moveCmd{}, "items")
	c.Register(&setCmd{}, "items")
	c.Register(&relocateCmd{}, "items")

	c.Register(&listCmd{}, "reports")
	c.Register(&findCmd{}, "reports")
	c.Register(&locationsCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "", "Path to the inventory file (JSON format). Defaults to $PACK_INVENTORY_FILE, then travelpack.yaml, then "+defaultInventoryFile)
var Verbose = flag.Bool("v", false, "Print debug logs on stderr")
var rawMarkdown = flag.Bool("raw", false, "Print reports as raw markdown instead of rendering them for the terminal")

// stdout receives everything the commands print.
var stdout io.Writer = os.Stdout

// InventoryFile is the path of the inventory file in use.
func InventoryFile() string {
	if *inventoryFile != "" {
		return *inventoryFile
	}
	return config.InventoryFile
}

// DecodeInventory loads the inventory from the app inventory file.
func DecodeInventory() (*travelpack.Inventory, error) {
	filename := InventoryFile()
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("file", filename).Msg("inventory file does not exist, starting with an empty inventory")
	}
	inv := travelpack.NewInventory()
	if err := inv.Load(filename); err != nil {
		return nil, err
	}
	log.Debug().Str("file", filename).Int("items", inv.TotalItems()).Msg("inventory loaded")
	return inv, nil
}

// EncodeInventory saves inv into the app inventory file.
func EncodeInventory(inv *travelpack.Inventory) error {
	filename := InventoryFile()
	if err := inv.Save(filename); err != nil {
		return fmt.Errorf("cannot save inventory to %q: %w", filename, err)
	}
	log.Debug().Str("file", filename).Int("items", inv.TotalItems()).Msg("inventory saved")
	return nil
}

// loadFailure reports an inventory that cannot be loaded. A malformed file is
// the user's to fix, anything else is an I/O failure.
func loadFailure(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
	if errors.Is(err, travelpack.ErrMalformedRecord) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// save stores inv and reports failures.
func save(inv *travelpack.Inventory) subcommands.ExitStatus {
	if err := EncodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func usageError(f *flag.FlagSet, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	f.Usage()
	return subcommands.ExitUsageError
}

// parseQuantity parses a command line quantity, it must be a positive integer.
func parseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("quantity must be an integer, got %q", s)
	}
	if q <= 0 {
		return 0, fmt.Errorf("quantity must be positive, got %d", q)
	}
	return q, nil
}

// printMarkdown renders md for the terminal, or prints it as is when asked to
// or when it cannot be rendered.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Warn().Err(err).Msg("cannot render markdown")
	fmt.Fprint(stdout, md)
}

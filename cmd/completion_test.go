package cmd

import (
	"slices"
	"testing"
)

func TestCompletionNames(t *testing.T) {
	filename := setup(t, sample)
	inv := load(t, filename)

	if got, want := itemNames(inv), []string{"hat", "socks"}; !slices.Equal(got, want) {
		t.Errorf("itemNames() = %v, want %v", got, want)
	}
	if got, want := locationNames(inv), []string{"home", "suitcase"}; !slices.Equal(got, want) {
		t.Errorf("locationNames() = %v, want %v", got, want)
	}
}

func TestCompletionCommand(t *testing.T) {
	c := completionCommand()
	cmds := []string{"add", "remove", "move", "set", "relocate", "list", "find", "locations", "query", "topic", "assist", "help", "flags", "commands"}
	for _, name := range cmds {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion does not know the %q command", name)
		}
	}
	if _, ok := c.Flags["inventory-file"]; !ok {
		t.Error("completion does not know the -inventory-file flag")
	}
}

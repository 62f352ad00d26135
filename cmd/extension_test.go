package cmd

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestIsCommand(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("pack", flag.ContinueOnError), "pack")
	Register(c)

	for _, name := range []string{"add", "move", "list", "help", "topic"} {
		if !IsCommand(c, name) {
			t.Errorf("IsCommand(%q) = false, want true", name)
		}
	}
	if IsCommand(c, "hello") {
		t.Error("IsCommand(\"hello\") = true, want false")
	}
}

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension test uses a shell script")
	}
	tempDir := t.TempDir()
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	script := "#!/bin/sh\n" +
		"echo " + EnvInventoryFile + "=$" + EnvInventoryFile + "\n" +
		"echo " + EnvVerbose + "=$" + EnvVerbose + "\n" +
		"echo args=$@\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "pack-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	filename := setup(t, "")
	var out bytes.Buffer
	stdout = &out
	t.Cleanup(func() { stdout = os.Stdout })

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("RunExtension(\"hello\") did not find pack-hello")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	for _, want := range []string{EnvInventoryFile + "=" + filename, EnvVerbose + "=false", "args=a b"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("extension output does not contain %q:\n%s", want, out.String())
		}
	}

	if found, _ := RunExtension("no-such-extension", nil); found {
		t.Error("RunExtension found an extension that does not exist")
	}
}

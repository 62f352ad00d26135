package travelpack

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// This file tests the examples in the README.md file.
//
// A testable example is a command in a ```bash ... ``` block immediately
// followed by its expected output in a ```console ... ``` block. Commands run
// in order, in the same empty directory.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildPack builds the pack command into dir and returns its path.
func buildPack(t *testing.T, dir string) string {
	t.Helper()
	output := filepath.Join(dir, "pack")
	build := exec.Command("go", "build", "-o", output, "./pack/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build pack command: %v\n%s", err, out)
	}
	return output
}

// parseReadme extracts commands and their expected outputs from README.md.
func parseReadme(t *testing.T) []Command {
	t.Helper()
	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	re := regexp.MustCompile("(?m)```bash\\n(pack.*?)\\n```\\n\\n```console\\n((.|\\n)*?)```")
	var commands []Command
	for _, match := range re.FindAllStringSubmatch(string(content), -1) {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}
	return commands
}

func TestReadme(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the pack command")
	}
	bin := t.TempDir()
	packPath := buildPack(t, bin)

	commands := parseReadme(t)
	if len(commands) == 0 {
		t.Fatal("no testable command found in README.md")
	}

	work := t.TempDir()
	for _, cmd := range commands {
		args := strings.Fields(cmd.Cmd)
		t.Log("Running command:", args)
		command := exec.Command(packPath, args[1:]...)
		command.Dir = work
		// A clean environment, so no configuration leaks into the test.
		command.Env = []string{"HOME=" + work, "PATH=" + os.Getenv("PATH")}
		output, err := command.CombinedOutput()
		if err != nil {
			t.Fatalf("failed to run %q: %v, output:\n%s", cmd.Cmd, err, output)
		}
		if got := string(output); got != cmd.Expected {
			t.Errorf("%s: expected output:\n%q\nbut got:\n%q", cmd.Cmd, cmd.Expected, got)
		}
	}
}

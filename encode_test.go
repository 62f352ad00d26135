package travelpack

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"
)

// writeTempInventory writes content in a fresh inventory file and returns its path.
func writeTempInventory(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return filename
}

func TestInventory_Encode(t *testing.T) {
	inv := NewInventory()
	inv.Add(NewItem("socks", 2, "home"))
	inv.Add(NewItem("socks", 1, "suitcase"))

	var buf bytes.Buffer
	if err := inv.Encode(&buf); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	want := `[
  {
    "name": "socks",
    "quantity": 2,
    "location": "home"
  },
  {
    "name": "socks",
    "quantity": 1,
    "location": "suitcase"
  }
]
`
	if got := buf.String(); got != want {
		t.Errorf("Encode() =\n%s\nwant:\n%s", got, want)
	}
}

func TestInventory_EncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := new(Inventory).Encode(&buf); err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("Encode() = %q; want %q", got, "[]")
	}
}

func TestDecodeInventory(t *testing.T) {
	input := `[
  {"name": "socks", "quantity": 2, "location": "home"},
  {"name": "socks", "quantity": 1, "location": "suitcase"},
  {"name": "socks", "quantity": 3, "location": "home"}
]`
	inv, err := DecodeInventory(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeInventory() unexpected error: %v", err)
	}

	want := []Item{NewItem("socks", 5, "home"), NewItem("socks", 1, "suitcase")}
	if got := slices.Collect(inv.Items()); !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeInventory() = %v; want %v", got, want)
	}
}

func TestDecodeInventory_EmptyArray(t *testing.T) {
	inv, err := DecodeInventory(strings.NewReader("[]\n\n"))
	if err != nil {
		t.Fatalf("DecodeInventory() unexpected error: %v", err)
	}
	if inv.TotalItems() != 0 {
		t.Errorf("TotalItems() = %d; want 0", inv.TotalItems())
	}
}

func TestDecodeInventory_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		wantMalformed bool
	}{
		{"not json", `socks: 2`, true},
		{"not an array", `{"name":"socks","quantity":1,"location":"home"}`, true},
		{"missing field", `[{"name":"socks","quantity":1,"location":"home"},{"name":"shirt","quantity":1}]`, true},
		{"wrong type", `[{"name":"socks","quantity":"many","location":"home"}]`, true},
		{"empty", ``, true},
		{"null", `null`, true},
		{"trailing data", `[{"name":"socks","quantity":1,"location":"home"}] garbage`, true},
		{"two arrays", "[{\"name\":\"socks\",\"quantity\":1,\"location\":\"home\"}]\n[{\"name\":\"passport\",\"quantity\":1,\"location\":\"backpack\"}]\n", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeInventory(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("DecodeInventory() expected an error, got nil")
			}
			if got := errors.Is(err, ErrMalformedRecord); got != tc.wantMalformed {
				t.Errorf("errors.Is(%v, ErrMalformedRecord) = %v; want %v", err, got, tc.wantMalformed)
			}
		})
	}
}

func TestInventory_SaveLoadRoundTrip(t *testing.T) {
	inv := NewInventory()
	inv.Add(NewItem("toothbrush", 1, "home"))
	inv.Add(NewItem("socks", 5, "home"))
	inv.Move("socks", "home", "suitcase", 2)
	inv.Add(NewItem("passport", 1, "backpack"))

	filename := filepath.Join(t.TempDir(), "inventory.json")
	if err := inv.Save(filename); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded := NewInventory()
	if err := loaded.Load(filename); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	want := slices.Collect(inv.Items())
	if got := slices.Collect(loaded.Items()); !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v; want %v", got, want)
	}
}

func TestInventory_SaveOverwrites(t *testing.T) {
	filename := writeTempInventory(t, `[{"name":"old","quantity":1,"location":"home"}]`)

	inv := NewInventory()
	inv.Add(NewItem("new", 1, "home"))
	if err := inv.Save(filename); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if strings.Contains(string(data), "old") || !strings.Contains(string(data), "new") {
		t.Errorf("saved file = %s; want only the new item", data)
	}

	// No temporary file is left behind.
	entries, err := os.ReadDir(filepath.Dir(filename))
	if err != nil {
		t.Fatalf("ReadDir() unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("folder holds %d entries; want 1", len(entries))
	}
}

func TestInventory_SaveKeepsMode(t *testing.T) {
	filename := writeTempInventory(t, `[]`)
	if err := os.Chmod(filename, 0600); err != nil {
		t.Fatal(err)
	}

	inv := NewInventory()
	inv.Add(NewItem("socks", 1, "home"))
	if err := inv.Save(filename); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	fi, err := os.Stat(filename)
	if err != nil {
		t.Fatal(err)
	}
	if got := fi.Mode().Perm(); got != 0600 {
		t.Errorf("mode after Save() = %v; want %v", got, os.FileMode(0600))
	}
}

func TestInventory_SaveNewFileMode(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "inventory.json")
	if err := NewInventory().Save(filename); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	fi, err := os.Stat(filename)
	if err != nil {
		t.Fatal(err)
	}
	if got := fi.Mode().Perm(); got != 0644 {
		t.Errorf("mode of a new file = %v; want %v", got, os.FileMode(0644))
	}
}

func TestInventory_SaveError(t *testing.T) {
	inv := NewInventory()
	inv.Add(NewItem("socks", 1, "home"))

	filename := filepath.Join(t.TempDir(), "missing", "inventory.json")
	if err := inv.Save(filename); err == nil {
		t.Fatal("Save() into a missing folder expected an error, got nil")
	}
	if inv.TotalItems() != 1 {
		t.Errorf("TotalItems() = %d after a failed save; want 1", inv.TotalItems())
	}
}

func TestInventory_LoadMissingFile(t *testing.T) {
	inv := NewInventory()
	if err := inv.Load(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Fatalf("Load() of a missing file: unexpected error: %v", err)
	}
	if inv.TotalItems() != 0 {
		t.Errorf("TotalItems() = %d; want 0", inv.TotalItems())
	}
}

func TestInventory_LoadIsAtomic(t *testing.T) {
	filename := writeTempInventory(t, `[
  {"name": "socks", "quantity": 2, "location": "home"},
  {"name": "shirt", "location": "home"}
]`)

	inv := NewInventory()
	inv.Add(NewItem("passport", 1, "backpack"))

	err := inv.Load(filename)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("Load() error = %v; want ErrMalformedRecord", err)
	}

	want := []Item{NewItem("passport", 1, "backpack")}
	if got := slices.Collect(inv.Items()); !reflect.DeepEqual(got, want) {
		t.Errorf("inventory after failed load = %v; want it unchanged %v", got, want)
	}
}

func TestInventory_LoadReplaces(t *testing.T) {
	filename := writeTempInventory(t, `[{"name": "socks", "quantity": 2, "location": "home"}]`)

	inv := NewInventory()
	inv.Add(NewItem("passport", 1, "backpack"))
	if err := inv.Load(filename); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	want := []Item{NewItem("socks", 2, "home")}
	if got := slices.Collect(inv.Items()); !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v; want %v", got, want)
	}
}

package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "nested", "test.toml")

	type section struct {
		Keyword string `toml:"keyword"`
		Shift   int    `toml:"shift"`
	}
	type document struct {
		Cipher section `toml:"cipher"`
	}

	original := document{Cipher: section{Keyword: "LEMON", Shift: 7}}
	if err := SaveTOML(testFile, original); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	var loaded document
	undecoded, err := LoadTOML(testFile, &loaded)
	if err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if len(undecoded) != 0 {
		t.Errorf("undecoded = %v, want none", undecoded)
	}
	if loaded != original {
		t.Errorf("loaded %+v, want %+v", loaded, original)
	}
}

func TestSaveTOML_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := SaveTOML(filepath.Join(dir, "a.toml"), map[string]int{"x": 1}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.toml" {
		t.Errorf("directory contents = %v, want only a.toml", entries)
	}
}

func TestLoadTOML_NonExistent(t *testing.T) {
	var data struct{ Name string }
	if _, err := LoadTOML(filepath.Join(t.TempDir(), "missing.toml"), &data); err == nil {
		t.Fatal("expected error for non-existent file, got nil")
	}
}

func TestLoadTOML_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("this is = = not toml"), 0600); err != nil {
		t.Fatal(err)
	}

	var data struct{ Name string }
	if _, err := LoadTOML(path, &data); err == nil {
		t.Fatal("expected error for invalid TOML, got nil")
	}
}

func TestLoadTOML_ReportsUndecoded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.toml")
	if err := os.WriteFile(path, []byte("name = \"a\"\ncolour = \"red\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var data struct {
		Name string `toml:"name"`
	}
	undecoded, err := LoadTOML(path, &data)
	if err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if len(undecoded) != 1 || undecoded[0] != "colour" {
		t.Errorf("undecoded = %v, want [colour]", undecoded)
	}
}

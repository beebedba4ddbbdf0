package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/cipherkit/internal/configs"
)

func TestConfigInit(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "config", "init")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(output, "✓") || !strings.Contains(output, "Created") {
		t.Errorf("expected creation message, got: %s", output)
	}
	if _, err := os.Stat(configs.UserSettings.ConfigPath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	output, err = runCLI(t, "config", "init")
	if err != nil {
		t.Fatalf("command returned error: %v", err)
	}
	if !strings.Contains(output, "already exists") || !strings.Contains(output, "--force") {
		t.Errorf("expected already-exists hint, got: %s", output)
	}

	output, err = runCLI(t, "config", "init", "--force")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(output, "Reset") {
		t.Errorf("expected reset message, got: %s", output)
	}
}

func TestConfigShow_Defaults(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	for _, want := range []string{"defaults, no config file", "LEMON", "PLAYFAIREXAMPLE", "23, 5"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestConfigShow_JSON(t *testing.T) {
	setupTestEnvironment(t)

	cfg := configs.Defaults()
	cfg.Vigenere.Keyword = "ATTACK"
	if err := configs.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	output, err := runCLI(t, "config", "show", "--json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var decoded configs.Config
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if decoded != *cfg {
		t.Errorf("decoded %+v, want %+v", decoded, cfg)
	}
}

func TestConfig_UsedByCipher(t *testing.T) {
	setupTestEnvironment(t)

	cfg := configs.Defaults()
	cfg.Caesar.Shift = 1
	if err := configs.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	output, err := runCLI(t, "cipher", "encrypt", "--raw", "abc")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if output != "bcd\n" {
		t.Errorf("output = %q, want %q", output, "bcd\n")
	}
}

func TestConfig_UnknownKeysWarned(t *testing.T) {
	setupTestEnvironment(t)

	path := configs.UserSettings.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[caesar]\nshfit = 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	output, err := runCLI(t, "cipher", "encrypt", "--raw", "abc")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(output, "Ignoring unknown key caesar.shfit") {
		t.Errorf("expected unknown key warning, got: %s", output)
	}
	if !strings.Contains(output, "def") {
		t.Errorf("expected default shift to apply, got: %s", output)
	}

	output, err = runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(output, "ignored keys:") || !strings.Contains(output, "caesar.shfit") {
		t.Errorf("expected ignored keys in config show, got: %s", output)
	}
}

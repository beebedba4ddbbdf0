package configs

import (
	"log"
	"os"
	"path/filepath"
)

// Settings holds the resolved on-disk locations used by cipherkit.
type Settings struct {
	ConfigDir string
	DataDir   string
}

// ConfigPath is the path of config.toml.
func (s *Settings) ConfigPath() string {
	return filepath.Join(s.ConfigDir, "config.toml")
}

// HistoryPath is the path of the JSON Lines history file.
func (s *Settings) HistoryPath() string {
	return filepath.Join(s.DataDir, "history.jsonl")
}

// UserSettings is resolved once at startup. Tests replace it to point at a
// temporary directory.
var UserSettings *Settings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserSettings = &Settings{
		ConfigDir: filepath.Join(configDir, "cipherkit"),
		DataDir:   filepath.Join(dataDir, "cipherkit"),
	}
}

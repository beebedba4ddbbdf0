package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/cipherkit/internal/configs"
	"github.com/google/uuid"
)

// TimestampFormat is RFC 3339 in UTC with microseconds.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry is one line of the history file.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`
	Operation string `json:"op"`
	Cipher    string `json:"cipher,omitempty"`
	InputLen  int    `json:"input_len"`
	OutputLen int    `json:"output_len"`
}

// Time parses the entry timestamp. The zero time is returned for entries
// with a malformed timestamp.
func (e Entry) Time() time.Time {
	t, err := time.Parse(TimestampFormat, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Path returns the history file location, or "" when no data directory has
// been resolved.
func Path() string {
	if configs.UserSettings == nil || configs.UserSettings.DataDir == "" {
		return ""
	}
	return configs.UserSettings.HistoryPath()
}

// Log appends entry to the history file, filling in ID and Timestamp when
// they are empty. Errors are swallowed.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	logPath := Path()
	if logPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries returns every entry in the history file, oldest first. A
// missing file yields no entries and no error.
func ReadEntries() ([]Entry, error) {
	logPath := Path()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data), nil
}

// ParseEntries decodes JSON Lines data. Blank and malformed lines are
// skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Last returns at most n of the newest entries, oldest first. n <= 0 returns
// all of them.
func Last(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}

// Clear removes the history file. Clearing a missing file is not an error.
func Clear() error {
	logPath := Path()
	if logPath == "" {
		return nil
	}
	if err := os.Remove(logPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

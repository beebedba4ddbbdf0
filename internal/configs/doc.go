// Package configs loads and saves the cipherkit configuration file.
//
// The file lives at $XDG_CONFIG_HOME/cipherkit/config.toml and holds the
// default cipher and the default key for each cipher family, the
// Diffie–Hellman group, and whether history is recorded. A missing file is
// not an error: Load returns Defaults. Values present in the file replace
// the defaults section by section, and the result is validated before it is
// returned.
//
// Paths are resolved once into UserSettings at startup. Tests point
// UserSettings at t.TempDir() before calling Load or Save.
package configs

package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/PolarWolf314/cipherkit/internal/ciphers"
	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
	"github.com/PolarWolf314/cipherkit/internal/keyexchange"
	"github.com/PolarWolf314/cipherkit/internal/numtheory"
)

type Config struct {
	Cipher        CipherSection   `toml:"cipher" json:"cipher"`
	Caesar        CaesarSection   `toml:"caesar" json:"caesar"`
	Affine        AffineSection   `toml:"affine" json:"affine"`
	Vigenere      KeywordSection  `toml:"vigenere" json:"vigenere"`
	Playfair      PlayfairSection `toml:"playfair" json:"playfair"`
	Transposition KeywordSection  `toml:"transposition" json:"transposition"`
	Exchange      ExchangeSection `toml:"exchange" json:"exchange"`
	History       HistorySection  `toml:"history" json:"history"`
}

type CipherSection struct {
	Default string `toml:"default" json:"default"`
}

type CaesarSection struct {
	Shift int `toml:"shift" json:"shift"`
}

type AffineSection struct {
	A int `toml:"a" json:"a"`
	B int `toml:"b" json:"b"`
}

type KeywordSection struct {
	Keyword string `toml:"keyword" json:"keyword"`
}

type PlayfairSection struct {
	Keyword string `toml:"keyword" json:"keyword"`
	Filler  string `toml:"filler" json:"filler"`
}

type ExchangeSection struct {
	P uint64 `toml:"p" json:"p"`
	G uint64 `toml:"g" json:"g"`
}

type HistorySection struct {
	Enabled bool `toml:"enabled" json:"enabled"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		Cipher:        CipherSection{Default: string(ciphers.KindCaesar)},
		Caesar:        CaesarSection{Shift: 3},
		Affine:        AffineSection{A: 5, B: 8},
		Vigenere:      KeywordSection{Keyword: "LEMON"},
		Playfair:      PlayfairSection{Keyword: "PLAYFAIREXAMPLE", Filler: "X"},
		Transposition: KeywordSection{Keyword: "SECURITY"},
		Exchange:      ExchangeSection{P: 23, G: 5},
		History:       HistorySection{Enabled: true},
	}
}

// Load reads the config file. A missing file yields Defaults; keys the file
// leaves out keep their default value.
func Load() (*Config, error) {
	return LoadFrom(UserSettings.ConfigPath())
}

func LoadFrom(path string) (*Config, error) {
	config, _, err := Inspect(path)
	return config, err
}

// Inspect loads path like LoadFrom and also returns the keys in the file
// that match no setting, such as a misspelled section or key name.
func Inspect(path string) (*Config, []string, error) {
	config := Defaults()

	unknown, err := LoadTOML(path, config)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil, nil
		}
		return nil, nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, nil, err
	}
	return config, unknown, nil
}

// Save validates and writes the config file.
func Save(config *Config) error {
	return SaveTo(UserSettings.ConfigPath(), config)
}

func SaveTo(path string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config %s: %w", path, err)
	}
	return nil
}

// Validate checks every section. The first problem found is returned
// wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := ciphers.ParseKind(c.Cipher.Default); err != nil {
		return invalid("cipher.default", "unknown cipher %q", c.Cipher.Default)
	}

	if numtheory.GCD(int64(c.Affine.A), 26) != 1 {
		return invalid("affine.a", "%d is not coprime with 26", c.Affine.A)
	}

	if _, err := ciphers.NewVigenere(c.Vigenere.Keyword); err != nil {
		return invalid("vigenere.keyword", "%q must contain at least one ASCII letter", c.Vigenere.Keyword)
	}

	if _, err := ciphers.BuildGrid(c.Playfair.Keyword); err != nil {
		return invalid("playfair.keyword", "%q must contain at least one ASCII letter", c.Playfair.Keyword)
	}
	if _, err := c.PlayfairFiller(); err != nil {
		return err
	}

	if _, err := ciphers.NewKeyedTransposition(c.Transposition.Keyword); err != nil {
		return invalid("transposition.keyword", "%q must contain a letter or digit", c.Transposition.Keyword)
	}

	if _, err := keyexchange.NewParams(c.Exchange.P, c.Exchange.G); err != nil {
		return invalid("exchange", "%v", err)
	}

	return nil
}

// PlayfairFiller returns the configured filler as a single upper-case letter.
func (c *Config) PlayfairFiller() (rune, error) {
	r := []rune(strings.ToUpper(c.Playfair.Filler))
	if len(r) != 1 || r[0] < 'A' || r[0] > 'Z' || r[0] == 'J' {
		return 0, invalid("playfair.filler", "%q must be a single letter other than J", c.Playfair.Filler)
	}
	return r[0], nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", kerrors.ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

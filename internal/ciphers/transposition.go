package ciphers

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

// Transpositions permute every rune of the text, so Normalize is the identity.
// Cells past the end of the text in the last row stay empty and are skipped
// in both directions.

// KeylessTransposition writes text row-major into a near-square grid and
// reads it column-major.
type KeylessTransposition struct{}

// NewKeylessTransposition returns the keyless transposition cipher.
func NewKeylessTransposition() *KeylessTransposition {
	return &KeylessTransposition{}
}

func (c *KeylessTransposition) Kind() Kind { return KindKeyless }

func (c *KeylessTransposition) Encrypt(text string) (string, error) {
	runes := []rune(text)
	cols := squareColumns(len(runes))
	return string(readColumns(runes, cols, identityOrder(cols))), nil
}

func (c *KeylessTransposition) Decrypt(text string) (string, error) {
	runes := []rune(text)
	cols := squareColumns(len(runes))
	return string(fillColumns(runes, cols, identityOrder(cols))), nil
}

func (c *KeylessTransposition) Normalize(text string) string { return text }

// KeyedTransposition reads columns in the alphabetical order of the key.
type KeyedTransposition struct {
	key   string
	order []int
}

// NewKeyedTransposition returns a keyed transposition cipher. The key is
// upper-cased, stripped to letters and digits and deduplicated on first
// occurrence; an empty result is ErrInvalidKey.
func NewKeyedTransposition(keyword string) (*KeyedTransposition, error) {
	key := normalizeTranspositionKey(keyword)
	if key == "" {
		return nil, fmt.Errorf("transposition key %q has no letters: %w", keyword, kerrors.ErrInvalidKey)
	}
	return &KeyedTransposition{key: key, order: columnOrder(key)}, nil
}

func (c *KeyedTransposition) Kind() Kind { return KindKeyed }

// Key returns the normalized key.
func (c *KeyedTransposition) Key() string { return c.key }

// Order returns the column indices in the order they are read.
func (c *KeyedTransposition) Order() []int {
	return append([]int(nil), c.order...)
}

func (c *KeyedTransposition) Encrypt(text string) (string, error) {
	return string(readColumns([]rune(text), len(c.order), c.order)), nil
}

func (c *KeyedTransposition) Decrypt(text string) (string, error) {
	return string(fillColumns([]rune(text), len(c.order), c.order)), nil
}

func (c *KeyedTransposition) Normalize(text string) string { return text }

func normalizeTranspositionKey(keyword string) string {
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, r := range strings.ToUpper(keyword) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		b.WriteRune(r)
	}
	return b.String()
}

// columnOrder ranks key positions by character, ties kept in key order.
func columnOrder(key string) []int {
	runes := []rune(key)
	order := identityOrder(len(runes))
	sort.SliceStable(order, func(i, j int) bool {
		return runes[order[i]] < runes[order[j]]
	})
	return order
}

// squareColumns returns ceil(sqrt(n)), at least 1.
func squareColumns(n int) int {
	cols := 1
	for cols*cols < n {
		cols++
	}
	return cols
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// readColumns lays text out row-major in cols columns and reads the columns
// in order, skipping empty cells.
func readColumns(text []rune, cols int, order []int) []rune {
	n := len(text)
	rows := (n + cols - 1) / cols
	out := make([]rune, 0, n)
	for _, col := range order {
		for row := 0; row < rows; row++ {
			if idx := row*cols + col; idx < n {
				out = append(out, text[idx])
			}
		}
	}
	return out
}

// fillColumns is the inverse of readColumns.
func fillColumns(text []rune, cols int, order []int) []rune {
	n := len(text)
	rows := (n + cols - 1) / cols
	out := make([]rune, n)
	k := 0
	for _, col := range order {
		for row := 0; row < rows; row++ {
			if idx := row*cols + col; idx < n {
				out[idx] = text[k]
				k++
			}
		}
	}
	return out
}

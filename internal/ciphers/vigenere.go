package ciphers

import (
	"fmt"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

// Both Vigenère strategies consume one key letter per plaintext letter.
// Non-letters are copied through and do not advance the key.

// Vigenere computes shifts arithmetically from the keyword extended to the
// number of letters in the text.
type Vigenere struct {
	shifts []int
}

// NewVigenere returns the keyword-extension Vigenère cipher. Non-letters in
// keyword are ignored; a keyword without letters is ErrInvalidKey.
func NewVigenere(keyword string) (*Vigenere, error) {
	shifts := keywordShifts(keyword)
	if len(shifts) == 0 {
		return nil, fmt.Errorf("vigenere keyword %q has no letters: %w", keyword, kerrors.ErrInvalidKey)
	}
	return &Vigenere{shifts: shifts}, nil
}

func (c *Vigenere) Kind() Kind { return KindVigenere }

// ExtendKey repeats or truncates the keyword to n letters.
func (c *Vigenere) ExtendKey(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte('A' + c.shifts[i%len(c.shifts)])
	}
	return string(out)
}

func (c *Vigenere) Encrypt(text string) (string, error) {
	key := c.ExtendKey(countLetters(text))
	return substitute(text, func(x, pos int) int { return mod26(x + int(key[pos]-'A')) }), nil
}

func (c *Vigenere) Decrypt(text string) (string, error) {
	key := c.ExtendKey(countLetters(text))
	return substitute(text, func(x, pos int) int { return mod26(x - int(key[pos]-'A')) }), nil
}

func (c *Vigenere) Normalize(text string) string { return text }

// VigenereTable looks letters up in a 26x26 addition table built for the key.
type VigenereTable struct {
	keyRows []int
	table   [alphabetSize][alphabetSize]byte
}

// NewVigenereTable returns the table-lookup Vigenère cipher. Its output is
// identical to NewVigenere for the same keyword.
func NewVigenereTable(keyword string) (*VigenereTable, error) {
	rows := keywordShifts(keyword)
	if len(rows) == 0 {
		return nil, fmt.Errorf("vigenere keyword %q has no letters: %w", keyword, kerrors.ErrInvalidKey)
	}

	c := &VigenereTable{keyRows: rows}
	for i := 0; i < alphabetSize; i++ {
		for j := 0; j < alphabetSize; j++ {
			c.table[i][j] = byte('A' + (i+j)%alphabetSize)
		}
	}
	return c, nil
}

func (c *VigenereTable) Kind() Kind { return KindVigenereTable }

// Lookup returns the table letter at row key, column plain.
func (c *VigenereTable) Lookup(key, plain byte) byte {
	return c.table[key-'A'][plain-'A']
}

func (c *VigenereTable) Encrypt(text string) (string, error) {
	return substitute(text, func(x, pos int) int {
		row := c.keyRows[pos%len(c.keyRows)]
		return int(c.table[row][x] - 'A')
	}), nil
}

func (c *VigenereTable) Decrypt(text string) (string, error) {
	return substitute(text, func(y, pos int) int {
		row := c.keyRows[pos%len(c.keyRows)]
		target := byte('A' + y)
		for col, v := range c.table[row] {
			if v == target {
				return col
			}
		}
		// Every row is a permutation of the alphabet.
		panic("ciphers: vigenere table row is not a permutation")
	}), nil
}

func (c *VigenereTable) Normalize(text string) string { return text }

func countLetters(text string) int {
	n := 0
	for _, r := range text {
		if _, _, ok := letterIndex(r); ok {
			n++
		}
	}
	return n
}

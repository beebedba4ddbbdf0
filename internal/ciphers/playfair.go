package ciphers

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

const (
	gridSize = 5

	// DefaultFiller pads odd digraph streams and splits doubled letters.
	DefaultFiller = 'X'

	// playfairAlphabet is the alphabet without 'J'.
	playfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
)

// Grid is a 5x5 Playfair square filled row-major.
type Grid [gridSize][gridSize]byte

// String renders the grid one row per line with letters separated by spaces.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(c)
		}
		if i < gridSize-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PrepareKey upper-cases keyword, folds 'J' into 'I', drops non-letters and
// keeps only the first occurrence of each letter.
func PrepareKey(keyword string) string {
	var seen [alphabetSize]bool
	var b strings.Builder
	for _, c := range lettersOnly(keyword) {
		c = foldJ(c)
		if seen[c-'A'] {
			continue
		}
		seen[c-'A'] = true
		b.WriteByte(c)
	}
	return b.String()
}

// BuildGrid fills a grid with the prepared keyword followed by the rest of
// the alphabet. A keyword without letters is ErrInvalidKey.
func BuildGrid(keyword string) (Grid, error) {
	prepared := PrepareKey(keyword)
	if prepared == "" {
		return Grid{}, fmt.Errorf("playfair keyword %q has no letters: %w", keyword, kerrors.ErrInvalidKey)
	}

	fill := prepared
	for i := 0; i < len(playfairAlphabet); i++ {
		if !strings.ContainsRune(prepared, rune(playfairAlphabet[i])) {
			fill += string(playfairAlphabet[i])
		}
	}

	var g Grid
	for i := 0; i < len(fill); i++ {
		g[i/gridSize][i%gridSize] = fill[i]
	}
	return g, nil
}

type cell struct {
	row, col int
	ok       bool
}

// Playfair substitutes digraphs using a 5x5 grid.
type Playfair struct {
	grid      Grid
	positions [alphabetSize]cell
	filler    byte
	alternate byte
}

// NewPlayfair returns a Playfair cipher keyed by keyword.
func NewPlayfair(keyword string, filler rune) (*Playfair, error) {
	g, err := BuildGrid(keyword)
	if err != nil {
		return nil, err
	}
	return NewPlayfairFromGrid(g, filler)
}

// NewPlayfairFromGrid returns a Playfair cipher over an explicit grid. The grid
// must hold 25 distinct letters A-Z without 'J'. filler must be a letter
// other than 'J'.
func NewPlayfairFromGrid(g Grid, filler rune) (*Playfair, error) {
	f, err := playfairFiller(filler)
	if err != nil {
		return nil, err
	}

	c := &Playfair{grid: g, filler: f, alternate: 'Q'}
	if f == 'Q' {
		c.alternate = 'X'
	}

	for i, row := range g {
		for j, v := range row {
			if v < 'A' || v > 'Z' || v == 'J' {
				return nil, fmt.Errorf("playfair grid cell (%d,%d) holds %q: %w", i, j, v, kerrors.ErrInvalidKey)
			}
			if c.positions[v-'A'].ok {
				return nil, fmt.Errorf("playfair grid repeats %q: %w", v, kerrors.ErrInvalidKey)
			}
			c.positions[v-'A'] = cell{row: i, col: j, ok: true}
		}
	}
	return c, nil
}

func playfairFiller(r rune) (byte, error) {
	idx, _, ok := letterIndex(r)
	if !ok || idx == 'J'-'A' {
		return 0, fmt.Errorf("playfair filler %q must be a letter other than J: %w", r, kerrors.ErrInvalidKey)
	}
	return byte('A' + idx), nil
}

func (c *Playfair) Kind() Kind { return KindPlayfair }

// Grid returns a copy of the grid.
func (c *Playfair) Grid() Grid { return c.grid }

// Normalize returns the digraph stream encryption works on: letters only,
// upper-case, 'J' folded into 'I', the filler inserted between doubled
// letters of a pair and appended to an odd tail.
func (c *Playfair) Normalize(text string) string {
	letters := lettersOnly(text)
	for i := range letters {
		letters[i] = foldJ(letters[i])
	}

	out := make([]byte, 0, len(letters)+len(letters)/2+1)
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 < len(letters) && letters[i+1] != a {
			out = append(out, a, letters[i+1])
			i += 2
			continue
		}
		out = append(out, a, c.fillerFor(a))
		i++
	}
	return string(out)
}

func (c *Playfair) fillerFor(a byte) byte {
	if a == c.filler {
		return c.alternate
	}
	return c.filler
}

func (c *Playfair) Encrypt(text string) (string, error) {
	return c.transform([]byte(c.Normalize(text)), 1)
}

// Decrypt expects ciphertext produced by Encrypt; non-letters are ignored.
// An odd number of letters or a doubled digraph is ErrInvalidInput.
func (c *Playfair) Decrypt(text string) (string, error) {
	letters := lettersOnly(text)
	for i := range letters {
		letters[i] = foldJ(letters[i])
	}
	if len(letters)%2 != 0 {
		return "", fmt.Errorf("playfair ciphertext has odd length %d: %w", len(letters), kerrors.ErrInvalidInput)
	}
	for i := 0; i < len(letters); i += 2 {
		if letters[i] == letters[i+1] {
			return "", fmt.Errorf("playfair ciphertext digraph %q repeats a letter: %w", letters[i:i+2], kerrors.ErrInvalidInput)
		}
	}
	return c.transform(letters, gridSize-1)
}

// transform applies the digraph rules with the given row/column step:
// 1 to encrypt, 4 (i.e. -1 mod 5) to decrypt.
func (c *Playfair) transform(stream []byte, step int) (string, error) {
	out := make([]byte, len(stream))
	for i := 0; i < len(stream); i += 2 {
		p1, err := c.locate(stream[i])
		if err != nil {
			return "", err
		}
		p2, err := c.locate(stream[i+1])
		if err != nil {
			return "", err
		}

		switch {
		case p1.row == p2.row:
			out[i] = c.grid[p1.row][(p1.col+step)%gridSize]
			out[i+1] = c.grid[p2.row][(p2.col+step)%gridSize]
		case p1.col == p2.col:
			out[i] = c.grid[(p1.row+step)%gridSize][p1.col]
			out[i+1] = c.grid[(p2.row+step)%gridSize][p2.col]
		default:
			out[i] = c.grid[p1.row][p2.col]
			out[i+1] = c.grid[p2.row][p1.col]
		}
	}
	return string(out), nil
}

func (c *Playfair) locate(letter byte) (cell, error) {
	if letter >= 'A' && letter <= 'Z' {
		if p := c.positions[letter-'A']; p.ok {
			return p, nil
		}
	}
	return cell{}, fmt.Errorf("%q: %w", letter, kerrors.ErrLookup)
}

func foldJ(c byte) byte {
	if c == 'J' {
		return 'I'
	}
	return c
}

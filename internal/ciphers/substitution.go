package ciphers

import (
	"fmt"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
	"github.com/PolarWolf314/cipherkit/internal/numtheory"
)

// Caesar shifts every letter by a fixed amount.
type Caesar struct {
	shift int
}

// NewCaesar returns a Caesar cipher. Any shift is valid; it is reduced mod 26.
func NewCaesar(shift int) *Caesar {
	return &Caesar{shift: mod26(shift)}
}

func (c *Caesar) Kind() Kind { return KindCaesar }

// Shift returns the shift reduced to 0..25.
func (c *Caesar) Shift() int { return c.shift }

func (c *Caesar) Encrypt(text string) (string, error) {
	return substitute(text, func(x, _ int) int { return mod26(x + c.shift) }), nil
}

func (c *Caesar) Decrypt(text string) (string, error) {
	return substitute(text, func(x, _ int) int { return mod26(x - c.shift) }), nil
}

func (c *Caesar) Normalize(text string) string { return text }

// Affine maps x to (a*x + b) mod 26.
type Affine struct {
	a    int
	b    int
	aInv int
}

// NewAffine returns an affine cipher. It fails with ErrInvalidKey unless a is
// coprime to 26.
func NewAffine(a, b int) (*Affine, error) {
	inv, err := numtheory.ModInverse(int64(a), alphabetSize)
	if err != nil {
		return nil, fmt.Errorf("affine multiplier %d is not coprime to %d: %w", a, alphabetSize, kerrors.ErrInvalidKey)
	}
	return &Affine{a: mod26(a), b: mod26(b), aInv: int(inv)}, nil
}

func (c *Affine) Kind() Kind { return KindAffine }

func (c *Affine) Encrypt(text string) (string, error) {
	return substitute(text, func(x, _ int) int { return mod26(c.a*x + c.b) }), nil
}

func (c *Affine) Decrypt(text string) (string, error) {
	return substitute(text, func(y, _ int) int { return mod26(c.aInv * (y - c.b)) }), nil
}

func (c *Affine) Normalize(text string) string { return text }

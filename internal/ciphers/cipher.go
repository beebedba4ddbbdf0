package ciphers

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

// Kind names a cipher variant.
type Kind string

const (
	KindCaesar        Kind = "caesar"
	KindAffine        Kind = "affine"
	KindVigenere      Kind = "vigenere"
	KindVigenereTable Kind = "vigenere-table"
	KindPlayfair      Kind = "playfair"
	KindKeyless       Kind = "keyless"
	KindKeyed         Kind = "keyed"
)

// Kinds returns every supported cipher kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindCaesar,
		KindAffine,
		KindVigenere,
		KindVigenereTable,
		KindPlayfair,
		KindKeyless,
		KindKeyed,
	}
}

// ParseKind resolves a user supplied cipher name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, kerrors.ErrUnknownCipher)
}

// Cipher encrypts and decrypts text with a key fixed at construction.
type Cipher interface {
	// Kind reports which variant this cipher is.
	Kind() Kind

	// Encrypt returns the ciphertext for text.
	Encrypt(text string) (string, error)

	// Decrypt returns the plaintext for text.
	Decrypt(text string) (string, error)

	// Normalize returns the canonical form Decrypt(Encrypt(text)) yields.
	Normalize(text string) string
}

// Key is one of ShiftKey, AffineKey, KeywordKey, GridKey or NoKey.
type Key interface {
	variant() string
}

// ShiftKey is the Caesar shift.
type ShiftKey int

// AffineKey holds the affine transform y = a*x + b.
type AffineKey struct {
	A int
	B int
}

// KeywordKey is a keyword for Vigenère, Playfair or keyed transposition.
type KeywordKey string

// GridKey is an explicit Playfair grid.
type GridKey Grid

// NoKey is the key of the keyless transposition.
type NoKey struct{}

func (ShiftKey) variant() string   { return "shift" }
func (AffineKey) variant() string  { return "affine" }
func (KeywordKey) variant() string { return "keyword" }
func (GridKey) variant() string    { return "grid" }
func (NoKey) variant() string      { return "none" }

// Option adjusts how a cipher is built.
type Option func(*options)

type options struct {
	filler rune
}

// WithFiller sets the Playfair filler letter. Other ciphers ignore it.
func WithFiller(r rune) Option {
	return func(o *options) {
		o.filler = r
	}
}

// New builds the cipher of the given kind from key.
func New(kind Kind, key Key, opts ...Option) (Cipher, error) {
	o := options{filler: DefaultFiller}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindCaesar:
		k, ok := key.(ShiftKey)
		if !ok {
			return nil, keyMismatch(kind, "shift", key)
		}
		return NewCaesar(int(k)), nil

	case KindAffine:
		k, ok := key.(AffineKey)
		if !ok {
			return nil, keyMismatch(kind, "affine", key)
		}
		return NewAffine(k.A, k.B)

	case KindVigenere:
		k, ok := key.(KeywordKey)
		if !ok {
			return nil, keyMismatch(kind, "keyword", key)
		}
		return NewVigenere(string(k))

	case KindVigenereTable:
		k, ok := key.(KeywordKey)
		if !ok {
			return nil, keyMismatch(kind, "keyword", key)
		}
		return NewVigenereTable(string(k))

	case KindPlayfair:
		switch k := key.(type) {
		case KeywordKey:
			return NewPlayfair(string(k), o.filler)
		case GridKey:
			return NewPlayfairFromGrid(Grid(k), o.filler)
		default:
			return nil, keyMismatch(kind, "keyword or grid", key)
		}

	case KindKeyless:
		if key != nil {
			if _, ok := key.(NoKey); !ok {
				return nil, keyMismatch(kind, "no", key)
			}
		}
		return NewKeylessTransposition(), nil

	case KindKeyed:
		k, ok := key.(KeywordKey)
		if !ok {
			return nil, keyMismatch(kind, "keyword", key)
		}
		return NewKeyedTransposition(string(k))
	}

	return nil, fmt.Errorf("%q: %w", kind, kerrors.ErrUnknownCipher)
}

func keyMismatch(kind Kind, want string, got Key) error {
	have := "nil"
	if got != nil {
		have = got.variant()
	}
	return fmt.Errorf("%s requires a %s key, got %s: %w", kind, want, have, kerrors.ErrInvalidKey)
}

package workflows

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/PolarWolf314/cipherkit/internal/ciphers"
	"github.com/PolarWolf314/cipherkit/internal/configs"
	"github.com/PolarWolf314/cipherkit/internal/history"
)

// CipherOptions configures the encrypt and decrypt workflows. Nil key fields
// fall back to the configured default for the chosen cipher.
type CipherOptions struct {
	// Kind names the cipher. Empty selects cipher.default from the config.
	Kind string

	// Text is the input to transform.
	Text string

	Shift   *int
	A       *int
	B       *int
	Keyword *string
	Filler  *rune

	// Config overrides the on-disk configuration. Used by tests.
	Config *configs.Config
}

// CipherResult contains the outcome of an encrypt or decrypt operation.
type CipherResult struct {
	Kind ciphers.Kind

	// Key describes the key that was used, e.g. "shift=3" or "LEMON".
	Key string

	Input  string
	Output string

	// Normalized is the canonical form of the plaintext. For encryption it
	// is what decrypting Output gives back.
	Normalized string
}

// Encrypt encrypts opts.Text with the selected cipher.
//
// Returns ErrUnknownCipher if the cipher name is not recognized and
// ErrInvalidKey if the key is unusable for that cipher.
func Encrypt(ctx context.Context, opts CipherOptions) (*CipherResult, error) {
	return runCipher(ctx, opts, "encrypt")
}

// Decrypt decrypts opts.Text with the selected cipher.
//
// Playfair ciphertext with an odd letter count or a repeated-letter pair is
// rejected with ErrInvalidInput.
func Decrypt(ctx context.Context, opts CipherOptions) (*CipherResult, error) {
	return runCipher(ctx, opts, "decrypt")
}

func runCipher(ctx context.Context, opts CipherOptions, op string) (*CipherResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	c, keyDesc, err := buildCipher(opts, cfg)
	if err != nil {
		return nil, err
	}

	var output string
	if op == "encrypt" {
		output, err = c.Encrypt(opts.Text)
	} else {
		output, err = c.Decrypt(opts.Text)
	}
	if err != nil {
		return nil, fmt.Errorf("%s with %s: %w", op, c.Kind(), err)
	}

	result := &CipherResult{
		Kind:   c.Kind(),
		Key:    keyDesc,
		Input:  opts.Text,
		Output: output,
	}
	if op == "encrypt" {
		result.Normalized = c.Normalize(opts.Text)
	} else {
		result.Normalized = output
	}

	record(cfg, history.Entry{
		Operation: op,
		Cipher:    string(c.Kind()),
		InputLen:  utf8.RuneCountInString(opts.Text),
		OutputLen: utf8.RuneCountInString(output),
	})

	return result, nil
}

// buildCipher resolves the cipher kind and its key from opts, filling gaps
// from cfg.
func buildCipher(opts CipherOptions, cfg *configs.Config) (ciphers.Cipher, string, error) {
	name := opts.Kind
	if name == "" {
		name = cfg.Cipher.Default
	}
	kind, err := ciphers.ParseKind(name)
	if err != nil {
		return nil, "", err
	}

	var (
		key     ciphers.Key
		keyDesc string
		copts   []ciphers.Option
	)

	switch kind {
	case ciphers.KindCaesar:
		shift := valueOr(opts.Shift, cfg.Caesar.Shift)
		key, keyDesc = ciphers.ShiftKey(shift), "shift="+strconv.Itoa(shift)

	case ciphers.KindAffine:
		a := valueOr(opts.A, cfg.Affine.A)
		b := valueOr(opts.B, cfg.Affine.B)
		key, keyDesc = ciphers.AffineKey{A: a, B: b}, fmt.Sprintf("a=%d b=%d", a, b)

	case ciphers.KindVigenere, ciphers.KindVigenereTable:
		kw := valueOr(opts.Keyword, cfg.Vigenere.Keyword)
		key, keyDesc = ciphers.KeywordKey(kw), kw

	case ciphers.KindPlayfair:
		kw := valueOr(opts.Keyword, cfg.Playfair.Keyword)
		filler := ciphers.DefaultFiller
		if opts.Filler != nil {
			filler = *opts.Filler
		} else if f, err := cfg.PlayfairFiller(); err == nil {
			filler = f
		}
		key, keyDesc = ciphers.KeywordKey(kw), kw
		copts = append(copts, ciphers.WithFiller(filler))

	case ciphers.KindKeyed:
		kw := valueOr(opts.Keyword, cfg.Transposition.Keyword)
		key, keyDesc = ciphers.KeywordKey(kw), kw

	case ciphers.KindKeyless:
		key, keyDesc = ciphers.NoKey{}, "none"
	}

	c, err := ciphers.New(kind, key, copts...)
	if err != nil {
		return nil, "", err
	}
	return c, keyDesc, nil
}

// GridOptions configures the Playfair grid workflow.
type GridOptions struct {
	// Keyword overrides playfair.keyword from the config.
	Keyword *string

	Config *configs.Config
}

// GridResult contains the Playfair grid for a keyword.
type GridResult struct {
	Keyword string

	// Prepared is the keyword after J folding and deduplication.
	Prepared string

	Grid ciphers.Grid

	// Rows holds the five grid rows as strings.
	Rows []string
}

// Grid builds the Playfair grid for a keyword.
func Grid(ctx context.Context, opts GridOptions) (*GridResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	kw := valueOr(opts.Keyword, cfg.Playfair.Keyword)
	g, err := ciphers.BuildGrid(kw)
	if err != nil {
		return nil, err
	}

	rows := make([]string, len(g))
	for i := range g {
		rows[i] = string(g[i][:])
	}

	return &GridResult{
		Keyword:  kw,
		Prepared: ciphers.PrepareKey(kw),
		Grid:     g,
		Rows:     rows,
	}, nil
}

func valueOr[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}

package ciphers

import (
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

func TestPrepareKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"PLAYFAIREXAMPLE", "PLAYFIREXM"},
		{"playfair example", "PLAYFIREXM"},
		{"JUICE", "IUCE"},
		{"hello, world", "HELOWRD"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := PrepareKey(tc.in); got != tc.want {
			t.Errorf("PrepareKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildGrid(t *testing.T) {
	g, err := BuildGrid("PLAYFAIREXAMPLE")
	if err != nil {
		t.Fatalf("BuildGrid returned error: %v", err)
	}

	want := "P L A Y F\n" +
		"I R E X M\n" +
		"B C D G H\n" +
		"K N O Q S\n" +
		"T U V W Z"
	if got := g.String(); got != want {
		t.Errorf("grid =\n%s\nwant\n%s", got, want)
	}

	seen := make(map[byte]bool)
	for _, row := range g {
		for _, c := range row {
			if c == 'J' {
				t.Errorf("grid contains J")
			}
			if seen[c] {
				t.Errorf("grid repeats %c", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != 25 {
		t.Errorf("grid has %d distinct letters, want 25", len(seen))
	}
}

func TestBuildGridRejectsEmptyKey(t *testing.T) {
	for _, key := range []string{"", "1234", "  "} {
		if _, err := BuildGrid(key); !errors.Is(err, kerrors.ErrInvalidKey) {
			t.Errorf("BuildGrid(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestPlayfairHelloWorld(t *testing.T) {
	c, err := NewPlayfair("PLAYFAIREXAMPLE", DefaultFiller)
	if err != nil {
		t.Fatalf("NewPlayfair returned error: %v", err)
	}

	if got := c.Normalize("HELLO WORLD"); got != "HELXLOWORLDX" {
		t.Errorf("Normalize = %q, want HELXLOWORLDX", got)
	}

	enc, err := c.Encrypt("HELLO WORLD")
	if err != nil {
		t.Fatalf("Encrypt returned error: %v", err)
	}
	if enc != "DMYRANVQCRGE" {
		t.Errorf("Encrypt = %q, want DMYRANVQCRGE", enc)
	}

	dec, err := c.Decrypt(enc)
	if err != nil {
		t.Fatalf("Decrypt returned error: %v", err)
	}
	if dec != "HELXLOWORLDX" {
		t.Errorf("Decrypt = %q, want HELXLOWORLDX", dec)
	}
	if stripped := strings.ReplaceAll(dec, "X", ""); stripped != "HELLOWORLD" {
		t.Errorf("Decrypt without fillers = %q, want HELLOWORLD", stripped)
	}
}

func TestPlayfairNormalize(t *testing.T) {
	c, err := NewPlayfair("KEY", DefaultFiller)
	if err != nil {
		t.Fatalf("NewPlayfair returned error: %v", err)
	}

	tests := []struct {
		name, in, want string
	}{
		{"Empty", "", ""},
		{"OddLength", "abc", "ABCX"},
		{"FoldsJ", "jam", "IAMX"},
		{"DoubledLetters", "BALLOON", "BALXLOON"},
		{"DoubledFiller", "XX", "XQXQ"},
		{"OddFillerTail", "AX", "AX"},
		{"LoneFiller", "X", "XQ"},
		{"StripsNonLetters", "a-b c!", "ABCX"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPlayfairRules(t *testing.T) {
	// Grid for PLAYFAIREXAMPLE:
	//   P L A Y F
	//   I R E X M
	//   B C D G H
	//   K N O Q S
	//   T U V W Z
	c, err := NewPlayfair("PLAYFAIREXAMPLE", DefaultFiller)
	if err != nil {
		t.Fatalf("NewPlayfair returned error: %v", err)
	}

	tests := []struct {
		name, plain, want string
	}{
		{"SameRow", "PL", "LA"},
		{"SameRowWraps", "YF", "FP"},
		{"SameColumn", "PI", "IB"},
		{"SameColumnWraps", "KT", "TP"},
		{"Rectangle", "HE", "DM"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Encrypt(tc.plain)
			if err != nil {
				t.Fatalf("Encrypt returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Encrypt(%s) = %s, want %s", tc.plain, got, tc.want)
			}
			back, err := c.Decrypt(got)
			if err != nil {
				t.Fatalf("Decrypt returned error: %v", err)
			}
			if back != tc.plain {
				t.Errorf("Decrypt(%s) = %s, want %s", got, back, tc.plain)
			}
		})
	}
}

func TestPlayfairDecryptRejectsMalformedCiphertext(t *testing.T) {
	c, err := NewPlayfair("KEY", DefaultFiller)
	if err != nil {
		t.Fatalf("NewPlayfair returned error: %v", err)
	}

	for _, in := range []string{"ABC", "AABB", "Q"} {
		if _, err := c.Decrypt(in); !errors.Is(err, kerrors.ErrInvalidInput) {
			t.Errorf("Decrypt(%q) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestPlayfairFromGrid(t *testing.T) {
	g, err := BuildGrid("MONARCHY")
	if err != nil {
		t.Fatalf("BuildGrid returned error: %v", err)
	}

	fromGrid, err := NewPlayfairFromGrid(g, DefaultFiller)
	if err != nil {
		t.Fatalf("NewPlayfairFromGrid returned error: %v", err)
	}
	fromKey, err := NewPlayfair("MONARCHY", DefaultFiller)
	if err != nil {
		t.Fatalf("NewPlayfair returned error: %v", err)
	}

	a, _ := fromGrid.Encrypt("instruments")
	b, _ := fromKey.Encrypt("instruments")
	if a != b {
		t.Errorf("grid cipher %q != keyword cipher %q", a, b)
	}
	if fromKey.Grid() != g {
		t.Errorf("Grid() does not match BuildGrid")
	}
}

func TestPlayfairFromGridValidates(t *testing.T) {
	good, err := BuildGrid("KEY")
	if err != nil {
		t.Fatalf("BuildGrid returned error: %v", err)
	}

	withJ := good
	withJ[0][0] = 'J'

	duplicate := good
	duplicate[4][4] = duplicate[0][0]

	lower := good
	lower[2][2] = 'a'

	for name, g := range map[string]Grid{"WithJ": withJ, "Duplicate": duplicate, "Lowercase": lower, "Zero": {}} {
		if _, err := NewPlayfairFromGrid(g, DefaultFiller); !errors.Is(err, kerrors.ErrInvalidKey) {
			t.Errorf("%s: error = %v, want ErrInvalidKey", name, err)
		}
	}
}

func TestPlayfairRejectsBadFiller(t *testing.T) {
	for _, f := range []rune{'J', '1', ' ', 'é'} {
		if _, err := NewPlayfair("KEY", f); !errors.Is(err, kerrors.ErrInvalidKey) {
			t.Errorf("filler %q: error = %v, want ErrInvalidKey", f, err)
		}
	}

	c, err := NewPlayfair("KEY", 'q')
	if err != nil {
		t.Fatalf("lower-case filler rejected: %v", err)
	}
	if got := c.Normalize("QQ"); got != "QXQX" {
		t.Errorf("Normalize(QQ) with filler Q = %q, want QXQX", got)
	}
}

func TestPlayfairLookupMiss(t *testing.T) {
	var c Playfair
	if _, err := c.transform([]byte("AB"), 1); !errors.Is(err, kerrors.ErrLookup) {
		t.Errorf("transform on empty grid error = %v, want ErrLookup", err)
	}
	if _, err := c.locate('?'); !errors.Is(err, kerrors.ErrLookup) {
		t.Errorf("locate('?') error = %v, want ErrLookup", err)
	}
}

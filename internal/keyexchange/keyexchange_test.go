package keyexchange

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
	"github.com/PolarWolf314/cipherkit/internal/numtheory"
)

// fixedSource replays values as offsets into [0, n).
type fixedSource struct {
	values []uint64
	next   int
}

func (s *fixedSource) Uint64N(n uint64) uint64 {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func mustParams(t *testing.T, p, g uint64) Params {
	t.Helper()
	params, err := NewParams(p, g)
	if err != nil {
		t.Fatalf("NewParams(%d, %d) returned error: %v", p, g, err)
	}
	return params
}

func TestExchangeToyCase(t *testing.T) {
	params := mustParams(t, 23, 5)

	res, err := Exchange(params, 4, 3)
	if err != nil {
		t.Fatalf("Exchange returned error: %v", err)
	}

	want := &Result{PublicA: 4, PublicB: 10, SharedSecret: 18}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("Exchange(23, 5, 4, 3) = %+v, want %+v", res, want)
	}
}

func TestExchangeNonPrimitiveGenerator(t *testing.T) {
	params := mustParams(t, 23, 9)
	if root, known := params.IsPrimitiveRoot(); root || !known {
		t.Errorf("IsPrimitiveRoot(23, 9) = %t, %t; want false, true", root, known)
	}

	res, err := Exchange(params, 4, 3)
	if err != nil {
		t.Fatalf("Exchange returned error: %v", err)
	}
	if res.PublicA != 6 || res.PublicB != 16 || res.SharedSecret != 9 {
		t.Errorf("Exchange(23, 9, 4, 3) = %+v, want {6 16 9}", res)
	}
}

func TestSecretsAgreeForAllExponents(t *testing.T) {
	params := mustParams(t, 23, 5)

	for a := uint64(1); a < params.P; a++ {
		for b := uint64(1); b < params.P; b++ {
			res, err := Exchange(params, a, b)
			if err != nil {
				t.Fatalf("Exchange(%d, %d) returned error: %v", a, b, err)
			}
			if want := numtheory.ModPow(params.G, a*b, params.P); res.SharedSecret != want {
				t.Fatalf("Exchange(%d, %d) secret = %d, want g^(ab) = %d", a, b, res.SharedSecret, want)
			}
		}
	}
}

func TestExchangeRandomLargePrime(t *testing.T) {
	params := mustParams(t, 2147483647, 7)
	rng := rand.New(rand.NewPCG(5, 6))

	for i := 0; i < 100; i++ {
		if _, err := ExchangeRandom(params, rng); err != nil {
			t.Fatalf("ExchangeRandom returned error: %v", err)
		}
	}
}

func TestNewPartySamplesWithinRange(t *testing.T) {
	params := mustParams(t, 23, 5)

	low, err := NewParty(params, &fixedSource{values: []uint64{0}})
	if err != nil {
		t.Fatalf("NewParty returned error: %v", err)
	}
	if low.Private() != 1 {
		t.Errorf("lowest sample = %d, want 1", low.Private())
	}

	high, err := NewParty(params, &fixedSource{values: []uint64{21}})
	if err != nil {
		t.Fatalf("NewParty returned error: %v", err)
	}
	if high.Private() != 22 {
		t.Errorf("highest sample = %d, want 22", high.Private())
	}

	res, err := ExchangeRandom(params, &fixedSource{values: []uint64{3, 2}})
	if err != nil {
		t.Fatalf("ExchangeRandom returned error: %v", err)
	}
	if res.SharedSecret != 18 {
		t.Errorf("fixed source exchange secret = %d, want 18", res.SharedSecret)
	}
}

func TestNewPartyNilSource(t *testing.T) {
	params := mustParams(t, 23, 5)
	if _, err := NewParty(params, nil); !errors.Is(err, kerrors.ErrInvalidParams) {
		t.Errorf("NewParty(nil) error = %v, want ErrInvalidParams", err)
	}
}

func TestCryptoSource(t *testing.T) {
	src, err := NewCryptoSource()
	if err != nil {
		t.Fatalf("NewCryptoSource returned error: %v", err)
	}
	params := mustParams(t, 23, 5)
	for i := 0; i < 50; i++ {
		p, err := NewParty(params, src)
		if err != nil {
			t.Fatalf("NewParty returned error: %v", err)
		}
		if p.Private() < 1 || p.Private() > 22 {
			t.Fatalf("private exponent %d outside [1, 22]", p.Private())
		}
	}
}

func TestNewParamsValidation(t *testing.T) {
	tests := []struct {
		name string
		p, g uint64
	}{
		{"CompositeModulus", 21, 5},
		{"ModulusOne", 1, 0},
		{"GeneratorOne", 23, 1},
		{"GeneratorZero", 23, 0},
		{"GeneratorTooLarge", 23, 23},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewParams(tc.p, tc.g); !errors.Is(err, kerrors.ErrInvalidParams) {
				t.Errorf("NewParams(%d, %d) error = %v, want ErrInvalidParams", tc.p, tc.g, err)
			}
		})
	}
}

func TestPrivateExponentRange(t *testing.T) {
	params := mustParams(t, 23, 5)
	for _, x := range []uint64{0, 23, 100} {
		if _, err := NewPartyWithPrivate(params, x); !errors.Is(err, kerrors.ErrOutOfRange) {
			t.Errorf("NewPartyWithPrivate(%d) error = %v, want ErrOutOfRange", x, err)
		}
	}
	if _, err := Exchange(params, 4, 0); !errors.Is(err, kerrors.ErrOutOfRange) {
		t.Errorf("Exchange with private 0 error = %v, want ErrOutOfRange", err)
	}
}

func TestSharedSecretRejectsBadPeer(t *testing.T) {
	params := mustParams(t, 23, 5)
	p, err := NewPartyWithPrivate(params, 4)
	if err != nil {
		t.Fatalf("NewPartyWithPrivate returned error: %v", err)
	}
	for _, peer := range []uint64{0, 23, 40} {
		if _, err := p.SharedSecret(peer); !errors.Is(err, kerrors.ErrOutOfRange) {
			t.Errorf("SharedSecret(%d) error = %v, want ErrOutOfRange", peer, err)
		}
	}
}

func TestIsPrimitiveRoot(t *testing.T) {
	roots := map[uint64]bool{5: true, 7: true, 10: true, 2: false, 3: false, 9: false}
	for g, want := range roots {
		got, known := mustParams(t, 23, g).IsPrimitiveRoot()
		if got != want || !known {
			t.Errorf("IsPrimitiveRoot(23, %d) = %t, %t; want %t, true", g, got, known, want)
		}
	}
}

func TestIsPrimitiveRootSkipsLargeModulus(t *testing.T) {
	// 2^61 - 1 is prime.
	params := mustParams(t, 2305843009213693951, 37)
	if _, known := params.IsPrimitiveRoot(); known {
		t.Errorf("primitive root check ran for p above %d", uint64(MaxPrimitiveRootCheck))
	}

	// 1099511627689 is the largest prime below 2^40.
	params = mustParams(t, 1099511627689, 3)
	if _, known := params.IsPrimitiveRoot(); !known {
		t.Error("primitive root check skipped for p below the limit")
	}
}

func TestPrimeFactors(t *testing.T) {
	tests := []struct {
		n    uint64
		want []uint64
	}{
		{22, []uint64{2, 11}},
		{60, []uint64{2, 3, 5}},
		{2147483646, []uint64{2, 3, 7, 11, 31, 151, 331}},
		{13, []uint64{13}},
	}
	for _, tc := range tests {
		if got := primeFactors(tc.n); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("primeFactors(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

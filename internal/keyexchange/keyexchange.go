package keyexchange

import (
	crand "crypto/rand"
	"fmt"
	mrand "math/rand/v2"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
	"github.com/PolarWolf314/cipherkit/internal/numtheory"
)

// Params are the public Diffie–Hellman parameters.
type Params struct {
	P uint64 // prime modulus
	G uint64 // generator
}

// NewParams validates p and g. p must be prime and 1 < g < p.
func NewParams(p, g uint64) (Params, error) {
	if !numtheory.IsPrime(p) {
		return Params{}, fmt.Errorf("modulus %d is not prime: %w", p, kerrors.ErrInvalidParams)
	}
	if g <= 1 || g >= p {
		return Params{}, fmt.Errorf("generator %d must lie in (1, %d): %w", g, p, kerrors.ErrInvalidParams)
	}
	return Params{P: p, G: g}, nil
}

// MaxPrimitiveRootCheck is the largest modulus IsPrimitiveRoot will check.
// Factoring p-1 by trial division takes O(sqrt(p)) steps.
const MaxPrimitiveRootCheck = 1 << 40

// IsPrimitiveRoot reports whether g generates every non-zero residue mod p.
// known is false, and root meaningless, when p exceeds MaxPrimitiveRootCheck.
func (pr Params) IsPrimitiveRoot() (root, known bool) {
	if pr.P > MaxPrimitiveRootCheck {
		return false, false
	}
	order := pr.P - 1
	for _, q := range primeFactors(order) {
		if numtheory.ModPow(pr.G, order/q, pr.P) == 1 {
			return false, true
		}
	}
	return true, true
}

// Source yields uniform integers in [0, n).
type Source interface {
	Uint64N(n uint64) uint64
}

// NewCryptoSource returns a ChaCha8 generator seeded from crypto/rand.
func NewCryptoSource() (Source, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seeding random source: %w", err)
	}
	return mrand.New(mrand.NewChaCha8(seed)), nil
}

// Party is one side of the exchange.
type Party struct {
	params  Params
	private uint64
	public  uint64
}

// NewParty samples a private exponent uniformly from [1, p-1].
func NewParty(params Params, src Source) (*Party, error) {
	if src == nil {
		return nil, fmt.Errorf("nil random source: %w", kerrors.ErrInvalidParams)
	}
	return NewPartyWithPrivate(params, 1+src.Uint64N(params.P-1))
}

// NewPartyWithPrivate builds a party from a known private exponent, which
// must lie in [1, p-1].
func NewPartyWithPrivate(params Params, private uint64) (*Party, error) {
	if params.P < 3 {
		return nil, fmt.Errorf("modulus %d: %w", params.P, kerrors.ErrInvalidParams)
	}
	if private < 1 || private > params.P-1 {
		return nil, fmt.Errorf("private exponent %d outside [1, %d]: %w", private, params.P-1, kerrors.ErrOutOfRange)
	}
	return &Party{
		params:  params,
		private: private,
		public:  numtheory.ModPow(params.G, private, params.P),
	}, nil
}

// Public returns g^x mod p.
func (p *Party) Public() uint64 { return p.public }

// Private returns the private exponent.
func (p *Party) Private() uint64 { return p.private }

// SharedSecret returns peer^x mod p. peer must lie in [1, p-1].
func (p *Party) SharedSecret(peer uint64) (uint64, error) {
	if peer < 1 || peer > p.params.P-1 {
		return 0, fmt.Errorf("peer public value %d outside [1, %d]: %w", peer, p.params.P-1, kerrors.ErrOutOfRange)
	}
	return numtheory.ModPow(peer, p.private, p.params.P), nil
}

// Result is the outcome of a completed exchange.
type Result struct {
	PublicA      uint64
	PublicB      uint64
	SharedSecret uint64
}

// Exchange runs the protocol between two parties with the given private
// exponents and returns both public values and the agreed secret.
func Exchange(params Params, privateA, privateB uint64) (*Result, error) {
	a, err := NewPartyWithPrivate(params, privateA)
	if err != nil {
		return nil, fmt.Errorf("party A: %w", err)
	}
	b, err := NewPartyWithPrivate(params, privateB)
	if err != nil {
		return nil, fmt.Errorf("party B: %w", err)
	}
	return Agree(a, b)
}

// ExchangeRandom runs the protocol with private exponents drawn from src.
func ExchangeRandom(params Params, src Source) (*Result, error) {
	a, err := NewParty(params, src)
	if err != nil {
		return nil, fmt.Errorf("party A: %w", err)
	}
	b, err := NewParty(params, src)
	if err != nil {
		return nil, fmt.Errorf("party B: %w", err)
	}
	return Agree(a, b)
}

// Agree has both parties derive the shared secret from the other's public
// value and checks that they match.
func Agree(a, b *Party) (*Result, error) {
	secretA, err := a.SharedSecret(b.Public())
	if err != nil {
		return nil, fmt.Errorf("party A: %w", err)
	}
	secretB, err := b.SharedSecret(a.Public())
	if err != nil {
		return nil, fmt.Errorf("party B: %w", err)
	}
	if secretA != secretB {
		return nil, fmt.Errorf("parties derived %d and %d: %w", secretA, secretB, kerrors.ErrInvalidParams)
	}
	return &Result{PublicA: a.Public(), PublicB: b.Public(), SharedSecret: secretA}, nil
}

// primeFactors returns the distinct prime factors of n by trial division.
func primeFactors(n uint64) []uint64 {
	var factors []uint64
	for q := uint64(2); q*q <= n; q++ {
		if n%q != 0 {
			continue
		}
		factors = append(factors, q)
		for n%q == 0 {
			n /= q
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Package rsa implements textbook RSA over machine-sized primes.
//
// A KeyPair is derived once from two distinct primes and never mutated.
// The public exponent is the smallest e >= 2 coprime to phi(n), so results
// are reproducible. Messages are integers in [0, n).
package rsa

import (
	"fmt"
	"math"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
	"github.com/PolarWolf314/cipherkit/internal/numtheory"
)

// MaxPrime bounds p and q so that n and phi fit in an int64.
const MaxPrime = math.MaxUint32 >> 1

// PublicKey is (e, n).
type PublicKey struct {
	E uint64
	N uint64
}

// PrivateKey is (d, n).
type PrivateKey struct {
	D uint64
	N uint64
}

// KeyPair holds both halves of an RSA key together with phi(n).
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
	Phi     uint64
}

// GenerateKeyPair derives a key pair from primes p and q using the smallest
// valid public exponent.
func GenerateKeyPair(p, q uint64) (*KeyPair, error) {
	phi, err := totient(p, q)
	if err != nil {
		return nil, err
	}

	for e := uint64(2); e < phi; e++ {
		if numtheory.GCD(int64(e), int64(phi)) == 1 {
			return derive(p, q, e, phi)
		}
	}
	return nil, fmt.Errorf("no public exponent below phi %d for p=%d q=%d: %w", phi, p, q, kerrors.ErrInvalidKey)
}

// NewKeyPairWithExponent derives a key pair from primes p and q with a caller
// chosen public exponent. e must satisfy 1 < e < phi and gcd(e, phi) == 1.
func NewKeyPairWithExponent(p, q, e uint64) (*KeyPair, error) {
	phi, err := totient(p, q)
	if err != nil {
		return nil, err
	}
	if e <= 1 || e >= phi {
		return nil, fmt.Errorf("public exponent %d must lie in (1, %d): %w", e, phi, kerrors.ErrInvalidKey)
	}
	return derive(p, q, e, phi)
}

func derive(p, q, e, phi uint64) (*KeyPair, error) {
	d, err := numtheory.ModInverse(int64(e), int64(phi))
	if err != nil {
		return nil, fmt.Errorf("public exponent %d: %w", e, err)
	}

	n := p * q
	return &KeyPair{
		Public:  PublicKey{E: e, N: n},
		Private: PrivateKey{D: uint64(d), N: n},
		Phi:     phi,
	}, nil
}

func totient(p, q uint64) (uint64, error) {
	for _, v := range []uint64{p, q} {
		if v > MaxPrime {
			return 0, fmt.Errorf("prime %d exceeds %d: %w", v, uint64(MaxPrime), kerrors.ErrInvalidKey)
		}
		if !numtheory.IsPrime(v) {
			return 0, fmt.Errorf("%d is not prime: %w", v, kerrors.ErrInvalidKey)
		}
	}
	if p == q {
		return 0, fmt.Errorf("primes must be distinct, got %d twice: %w", p, kerrors.ErrInvalidKey)
	}
	return (p - 1) * (q - 1), nil
}

// Encrypt returns m^e mod n. m must lie in [0, n).
func Encrypt(m uint64, pub PublicKey) (uint64, error) {
	if m >= pub.N {
		return 0, fmt.Errorf("message %d not below modulus %d: %w", m, pub.N, kerrors.ErrOutOfRange)
	}
	return numtheory.ModPow(m, pub.E, pub.N), nil
}

// Decrypt returns c^d mod n. c must lie in [0, n).
func Decrypt(c uint64, priv PrivateKey) (uint64, error) {
	if c >= priv.N {
		return 0, fmt.Errorf("ciphertext %d not below modulus %d: %w", c, priv.N, kerrors.ErrOutOfRange)
	}
	return numtheory.ModPow(c, priv.D, priv.N), nil
}

// Sign returns m^d mod n.
func Sign(m uint64, priv PrivateKey) (uint64, error) {
	if m >= priv.N {
		return 0, fmt.Errorf("message %d not below modulus %d: %w", m, priv.N, kerrors.ErrOutOfRange)
	}
	return numtheory.ModPow(m, priv.D, priv.N), nil
}

// Verify reports whether sig is a valid signature of m.
func Verify(m, sig uint64, pub PublicKey) (bool, error) {
	if m >= pub.N || sig >= pub.N {
		return false, fmt.Errorf("message %d or signature %d not below modulus %d: %w", m, sig, pub.N, kerrors.ErrOutOfRange)
	}
	return numtheory.ModPow(sig, pub.E, pub.N) == m, nil
}

package numtheory

import (
	"fmt"
	"math/big"
	"math/bits"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x and y
// such that a*x + b*y == g. g is never negative.
func ExtendedGCD(a, b int64) (g, x, y int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}
	return oldR, oldS, oldT
}

// ModInverse returns the unique x in [0, m) with a*x ≡ 1 (mod m).
// It fails with ErrNoInverse when a and m are not coprime.
func ModInverse(a, m int64) (int64, error) {
	if m <= 0 {
		return 0, fmt.Errorf("modulus %d must be positive: %w", m, kerrors.ErrInvalidInput)
	}

	g, x, _ := ExtendedGCD(mod(a, m), m)
	if g != 1 {
		return 0, fmt.Errorf("%d has no inverse modulo %d (gcd %d): %w", a, m, g, kerrors.ErrNoInverse)
	}
	return mod(x, m), nil
}

// ModPow returns base^exp mod m using exponentiation by squaring.
// ModPow(b, 0, m) is 1 for every m > 1 and any result modulo 1 is 0.
// It panics when m is zero, like integer division does.
func ModPow(base, exp, m uint64) uint64 {
	if m == 0 {
		panic("numtheory: zero modulus")
	}
	if m == 1 {
		return 0
	}

	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(20)
}

// mulMod computes a*b mod m for a, b < m without overflow.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// mod returns a mod m in [0, m) for positive m.
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

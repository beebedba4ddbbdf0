// Package numtheory provides the integer arithmetic shared by every cipher
// and key protocol in cipherkit.
//
// # Functions
//
//	GCD(a, b)              // Euclid; GCD(a, 0) == |a|
//	ExtendedGCD(a, b)      // (g, x, y) with a*x + b*y == g
//	ModInverse(a, m)       // a⁻¹ mod m in [0, m), ErrNoInverse when gcd(a, m) != 1
//	ModPow(base, exp, mod) // square-and-multiply, ModPow(x, 0, m) == 1 % m
//	IsPrime(n)             // deterministic for every uint64
//
// Signed helpers work on int64 because Bézout coefficients are signed.
// ModPow works on uint64 and never overflows: products are reduced through
// a 128-bit intermediate.
package numtheory

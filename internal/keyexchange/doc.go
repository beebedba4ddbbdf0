// Package keyexchange implements Diffie–Hellman key agreement between two
// in-process parties.
//
// Both parties share immutable Params (prime p, generator g). Each Party
// owns a private exponent in [1, p-1] and publishes g^x mod p. The shared
// secret is peer^x mod p and is returned to the caller rather than stored.
//
// Private exponents are drawn from an injectable Source so tests can fix
// them. *math/rand/v2.Rand satisfies Source; NewCryptoSource returns one
// seeded from crypto/rand.
package keyexchange

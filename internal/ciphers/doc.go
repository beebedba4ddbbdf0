// Package ciphers implements the classical ciphers offered by cipherkit.
//
// Every cipher satisfies the Cipher interface and is built from exactly one
// Key variant. Keys are validated when the cipher is constructed, so Encrypt
// and Decrypt on a constructed cipher never fail for key-related reasons.
//
// # Variants
//
//	KindCaesar         ShiftKey    // (x + k) mod 26
//	KindAffine         AffineKey   // (a*x + b) mod 26, gcd(a, 26) == 1
//	KindVigenere       KeywordKey  // keyword extension arithmetic
//	KindVigenereTable  KeywordKey  // 26x26 table lookup
//	KindPlayfair       KeywordKey or GridKey
//	KindKeyless        NoKey       // square grid row-fill, column-read
//	KindKeyed          KeywordKey  // key-ordered column permutation
//
// # Usage
//
//	c, err := ciphers.New(ciphers.KindAffine, ciphers.AffineKey{A: 5, B: 8})
//	if err != nil {
//	    return err
//	}
//	out, err := c.Encrypt("HELLO WORLD")
//
// # Normalization
//
// Substitution ciphers preserve case and pass non-letters through, so their
// Normalize is the identity. Playfair works on an upper-case digraph stream
// with 'J' folded into 'I' and fillers inserted; its Normalize returns that
// stream. Transpositions permute every rune and normalize to the identity.
// For every cipher c and supported text t:
//
//	c.Decrypt(c.Encrypt(t)) == c.Normalize(t)
//
// Ciphers are immutable once built and safe for concurrent use.
package ciphers

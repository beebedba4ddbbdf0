// Package secrets seals short messages under a key agreed by Diffie–Hellman.
//
// The shared secret from a toy exchange is far too small to use directly, so
// it is stretched with HKDF-SHA256 into a 256-bit key. Messages are sealed
// with NaCl secretbox. A random 24-byte nonce is prepended to every box, so
// sealing the same message twice produces different output.
//
// The toy group sizes make the agreed secret trivially guessable. This
// package demonstrates the flow of a key agreement feeding a symmetric
// cipher and offers no real protection.
package secrets

// Package errors provides typed error values for cipherkit.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Key errors: a key cannot build a cipher (ErrInvalidKey, ErrNoInverse)
//   - Input errors: the message cannot be processed (ErrOutOfRange, ErrLookup, ErrInvalidInput)
//   - Dispatch errors: unknown cipher kinds or bad parameters (ErrUnknownCipher, ErrInvalidParams, ErrInvalidConfig)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return nil, fmt.Errorf("affine multiplier %d is not coprime to 26: %w", a, kerrors.ErrInvalidKey)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrInvalidKey) {
//	    // Show user-friendly message
//	}
package errors

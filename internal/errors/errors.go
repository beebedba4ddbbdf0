package errors

import "errors"

// Key errors indicate a key could not be used to build a cipher or key pair.
var (
	// ErrInvalidKey indicates the key is empty, degenerate or violates a cipher invariant.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNoInverse indicates a modular inverse was requested for non-coprime values.
	ErrNoInverse = errors.New("modular inverse does not exist")
)

// Input errors indicate the text or number passed to an operation cannot be processed.
var (
	// ErrOutOfRange indicates a numeric message lies outside the modulus.
	ErrOutOfRange = errors.New("value out of range")

	// ErrLookup indicates a character is absent from a constructed grid.
	ErrLookup = errors.New("character not found in grid")

	// ErrInvalidInput indicates malformed text, such as a ciphertext of the wrong shape.
	ErrInvalidInput = errors.New("invalid input")
)

// Dispatch and configuration errors.
var (
	// ErrUnknownCipher indicates the requested cipher kind is not supported.
	ErrUnknownCipher = errors.New("unknown cipher")

	// ErrInvalidParams indicates invalid public parameters for a key exchange.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrInvalidConfig indicates the configuration file holds an unusable value.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrConfigExists indicates config init would overwrite an existing file.
	ErrConfigExists = errors.New("configuration file already exists")
)

// Sealing errors indicate a session message could not be protected or recovered.
var (
	// ErrSealFailed indicates a message could not be sealed.
	ErrSealFailed = errors.New("failed to seal message")

	// ErrOpenFailed indicates a sealed message failed authentication.
	ErrOpenFailed = errors.New("failed to open sealed message")
)

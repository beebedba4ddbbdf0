package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24

	sessionInfo = "cipherkit dh session v1"
)

// SessionKey is a secretbox key derived from a Diffie–Hellman secret.
type SessionKey [keySize]byte

// DeriveSessionKey stretches a shared secret into a secretbox key with
// HKDF-SHA256. The public parameters act as salt so that the same secret
// under different (p, g) yields different keys.
func DeriveSessionKey(sharedSecret, p, g uint64) (SessionKey, error) {
	var ikm [8]byte
	binary.BigEndian.PutUint64(ikm[:], sharedSecret)

	var salt [16]byte
	binary.BigEndian.PutUint64(salt[:8], p)
	binary.BigEndian.PutUint64(salt[8:], g)

	var key SessionKey
	r := hkdf.New(sha256.New, ikm[:], salt[:], []byte(sessionInfo))
	if _, err := io.ReadFull(r, key[:]); err != nil {
		return SessionKey{}, fmt.Errorf("deriving session key: %w", err)
	}
	return key, nil
}

// Seal encrypts plaintext under key. The random nonce is prepended to the
// returned box.
func Seal(key SessionKey, plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: reading nonce: %v", kerrors.ErrSealFailed, err)
	}

	k := [keySize]byte(key)
	return secretbox.Seal(nonce[:], plaintext, &nonce, &k), nil
}

// Open authenticates and decrypts a box produced by Seal.
func Open(key SessionKey, box []byte) ([]byte, error) {
	if len(box) < nonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("%w: box of %d bytes is too short", kerrors.ErrOpenFailed, len(box))
	}

	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])

	k := [keySize]byte(key)
	plaintext, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &k)
	if !ok {
		return nil, kerrors.ErrOpenFailed
	}
	return plaintext, nil
}

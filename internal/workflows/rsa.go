package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/cipherkit/internal/configs"
	"github.com/PolarWolf314/cipherkit/internal/history"
	"github.com/PolarWolf314/cipherkit/internal/rsa"
)

// KeyOptions identifies an RSA key pair by its primes and, optionally, its
// public exponent.
type KeyOptions struct {
	P uint64
	Q uint64

	// E fixes the public exponent. Nil picks the smallest valid one.
	E *uint64
}

func (o KeyOptions) keyPair() (*rsa.KeyPair, error) {
	if o.E != nil {
		return rsa.NewKeyPairWithExponent(o.P, o.Q, *o.E)
	}
	return rsa.GenerateKeyPair(o.P, o.Q)
}

// KeygenOptions configures the RSA keygen workflow.
type KeygenOptions struct {
	KeyOptions

	Config *configs.Config
}

// KeygenResult contains a derived RSA key pair.
type KeygenResult struct {
	P       uint64
	Q       uint64
	KeyPair *rsa.KeyPair
}

// Keygen derives an RSA key pair from two primes.
//
// Returns ErrInvalidKey for non-prime, equal or oversized primes and
// ErrNoInverse when a chosen exponent shares a factor with phi.
func Keygen(ctx context.Context, opts KeygenOptions) (*KeygenResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	kp, err := opts.keyPair()
	if err != nil {
		return nil, err
	}

	record(cfg, history.Entry{Operation: "rsa-keygen", Cipher: "rsa"})

	return &KeygenResult{P: opts.P, Q: opts.Q, KeyPair: kp}, nil
}

// RSAOptions configures the RSA encrypt, decrypt and sign workflows.
type RSAOptions struct {
	KeyOptions

	// Value is the message, ciphertext or value to sign. It must be less
	// than n.
	Value uint64

	Config *configs.Config
}

// RSAResult contains the outcome of a single RSA operation.
type RSAResult struct {
	KeyPair *rsa.KeyPair
	Input   uint64
	Output  uint64
}

// RSAEncrypt computes Value^e mod n.
func RSAEncrypt(ctx context.Context, opts RSAOptions) (*RSAResult, error) {
	return runRSA(ctx, opts, "rsa-encrypt", func(kp *rsa.KeyPair, v uint64) (uint64, error) {
		return rsa.Encrypt(v, kp.Public)
	})
}

// RSADecrypt computes Value^d mod n.
func RSADecrypt(ctx context.Context, opts RSAOptions) (*RSAResult, error) {
	return runRSA(ctx, opts, "rsa-decrypt", func(kp *rsa.KeyPair, v uint64) (uint64, error) {
		return rsa.Decrypt(v, kp.Private)
	})
}

// RSASign signs Value with the private exponent.
func RSASign(ctx context.Context, opts RSAOptions) (*RSAResult, error) {
	return runRSA(ctx, opts, "rsa-sign", func(kp *rsa.KeyPair, v uint64) (uint64, error) {
		return rsa.Sign(v, kp.Private)
	})
}

func runRSA(ctx context.Context, opts RSAOptions, op string, fn func(*rsa.KeyPair, uint64) (uint64, error)) (*RSAResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	kp, err := opts.keyPair()
	if err != nil {
		return nil, err
	}

	out, err := fn(kp, opts.Value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	record(cfg, history.Entry{
		Operation: op,
		Cipher:    "rsa",
		InputLen:  len(fmt.Sprint(opts.Value)),
		OutputLen: len(fmt.Sprint(out)),
	})

	return &RSAResult{KeyPair: kp, Input: opts.Value, Output: out}, nil
}

// VerifyOptions configures the RSA verify workflow.
type VerifyOptions struct {
	KeyOptions

	Message   uint64
	Signature uint64

	Config *configs.Config
}

// VerifyResult reports whether a signature matched.
type VerifyResult struct {
	KeyPair *rsa.KeyPair
	Valid   bool
}

// RSAVerify checks Signature against Message with the public exponent. A
// mismatch is reported in the result, not as an error.
func RSAVerify(ctx context.Context, opts VerifyOptions) (*VerifyResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	kp, err := opts.keyPair()
	if err != nil {
		return nil, err
	}

	ok, err := rsa.Verify(opts.Message, opts.Signature, kp.Public)
	if err != nil {
		return nil, fmt.Errorf("rsa-verify: %w", err)
	}

	record(cfg, history.Entry{Operation: "rsa-verify", Cipher: "rsa"})

	return &VerifyResult{KeyPair: kp, Valid: ok}, nil
}

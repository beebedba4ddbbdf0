package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/cipherkit/internal/configs"
	"github.com/PolarWolf314/cipherkit/internal/history"
	"github.com/PolarWolf314/cipherkit/internal/keyexchange"
	"github.com/PolarWolf314/cipherkit/internal/secrets"
)

// ExchangeOptions configures the Diffie–Hellman workflow.
type ExchangeOptions struct {
	// P and G override exchange.p and exchange.g from the config.
	P *uint64
	G *uint64

	// PrivateA and PrivateB fix the private exponents. A nil exponent is
	// drawn from Source.
	PrivateA *uint64
	PrivateB *uint64

	// Message, when non-empty, is sealed by party A under the agreed key
	// and opened by party B.
	Message string

	// Source supplies random exponents. Nil uses a crypto-seeded source.
	Source keyexchange.Source

	Config *configs.Config
}

// ExchangeResult contains the outcome of a key exchange.
type ExchangeResult struct {
	Params keyexchange.Params

	// PrimitiveRoot reports whether g generates the full group mod p. It is
	// only meaningful when PrimitiveRootKnown is set; large moduli are not
	// checked.
	PrimitiveRoot      bool
	PrimitiveRootKnown bool

	PrivateA uint64
	PrivateB uint64
	keyexchange.Result

	// Sealed is the box party A produced for Message. Empty without one.
	Sealed []byte

	// Opened is Message as recovered by party B.
	Opened string
}

// Exchange runs a Diffie–Hellman exchange between two simulated parties.
//
// Returns ErrInvalidParams when p is not prime or g is outside (1, p) and
// ErrOutOfRange when a fixed private exponent is outside [1, p-1].
func Exchange(ctx context.Context, opts ExchangeOptions) (*ExchangeResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	params, err := keyexchange.NewParams(valueOr(opts.P, cfg.Exchange.P), valueOr(opts.G, cfg.Exchange.G))
	if err != nil {
		return nil, err
	}

	src := opts.Source
	if src == nil && (opts.PrivateA == nil || opts.PrivateB == nil) {
		if src, err = keyexchange.NewCryptoSource(); err != nil {
			return nil, err
		}
	}

	a, err := newParty(params, opts.PrivateA, src)
	if err != nil {
		return nil, fmt.Errorf("party A: %w", err)
	}
	b, err := newParty(params, opts.PrivateB, src)
	if err != nil {
		return nil, fmt.Errorf("party B: %w", err)
	}

	agreed, err := keyexchange.Agree(a, b)
	if err != nil {
		return nil, err
	}

	root, known := params.IsPrimitiveRoot()
	result := &ExchangeResult{
		Params:             params,
		PrimitiveRoot:      root,
		PrimitiveRootKnown: known,
		PrivateA:           a.Private(),
		PrivateB:           b.Private(),
		Result:             *agreed,
	}

	if opts.Message != "" {
		if err := sealMessage(result, opts.Message); err != nil {
			return nil, err
		}
	}

	record(cfg, history.Entry{
		Operation: "dh-exchange",
		InputLen:  len(opts.Message),
		OutputLen: len(result.Sealed),
	})

	return result, nil
}

func newParty(params keyexchange.Params, private *uint64, src keyexchange.Source) (*keyexchange.Party, error) {
	if private != nil {
		return keyexchange.NewPartyWithPrivate(params, *private)
	}
	return keyexchange.NewParty(params, src)
}

// sealMessage derives a session key for each party from the agreed secret.
// A seals with its key and B opens with its own.
func sealMessage(result *ExchangeResult, message string) error {
	keyA, err := secrets.DeriveSessionKey(result.SharedSecret, result.Params.P, result.Params.G)
	if err != nil {
		return err
	}
	box, err := secrets.Seal(keyA, []byte(message))
	if err != nil {
		return err
	}

	keyB, err := secrets.DeriveSessionKey(result.SharedSecret, result.Params.P, result.Params.G)
	if err != nil {
		return err
	}
	opened, err := secrets.Open(keyB, box)
	if err != nil {
		return fmt.Errorf("party B: %w", err)
	}

	result.Sealed = box
	result.Opened = string(opened)
	return nil
}

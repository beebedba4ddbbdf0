// Package workflows provides the operations behind each cipherkit command.
//
// A workflow takes an Options struct, resolves anything left unset from the
// configuration file, runs the operation through the core packages
// (ciphers, keyexchange, rsa) and records a history entry. The cmd package
// stays a thin layer that parses flags, calls a workflow and prints the
// result.
//
//	result, err := workflows.Encrypt(ctx, workflows.CipherOptions{
//	    Kind: "vigenere",
//	    Text: "ATTACK AT DAWN",
//	})
//	if errors.Is(err, kerrors.ErrInvalidKey) {
//	    // report the bad keyword
//	}
//
// Errors wrap the sentinels in internal/errors and are matched with
// errors.Is. Every Options struct has a Config field so tests can run
// against an in-memory configuration instead of the user's file.
package workflows

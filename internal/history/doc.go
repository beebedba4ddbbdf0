// Package history records a trail of completed cipherkit operations.
//
// Entries are appended as JSON Lines to $XDG_DATA_HOME/cipherkit/history.jsonl.
// An entry names the operation, the cipher or algorithm used, and the sizes
// of the input and output. Plaintext, ciphertext and keys are never recorded.
//
// Recording is best effort. A failure to write the file never fails the
// operation that triggered it.
//
//	history.Log(history.Entry{Operation: "encrypt", Cipher: "caesar", InputLen: 11, OutputLen: 11})
//	entries, err := history.ReadEntries()
package history

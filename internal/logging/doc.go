// Package logger provides leveled diagnostics for cipherkit commands.
//
// Verbosity is controlled by two persistent flags:
//
//   - --verbose: info and warning messages
//   - --debug: everything, including debug details and returned errors
//
// Without flags only errors and critical warnings are printed.
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("encrypting %d letters", n)
//
// Commands build a Logger in their PersistentPreRun.
package logger

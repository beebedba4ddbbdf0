// Package cmd implements the cipherkit command tree.
package cmd

import (
	"errors"

	"github.com/PolarWolf314/cipherkit/internal/configs"
	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
	logger "github.com/PolarWolf314/cipherkit/internal/logging"
	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// addLoggingFlags registers --verbose and --debug on a command group and
// builds the shared Logger before any of its subcommands run.
func addLoggingFlags(group *cobra.Command) {
	group.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	group.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	group.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", group.Name(), verbose, debug)
		warnUnknownConfigKeys()
	}
}

// warnUnknownConfigKeys reports config file keys that match no setting.
// Load errors are left for the command itself to report.
func warnUnknownConfigKeys() {
	path := configs.UserSettings.ConfigPath()
	_, unknown, err := configs.Inspect(path)
	if err != nil {
		Logger.Debugf("Skipping config key check: %v", err)
		return
	}
	for _, key := range unknown {
		Logger.WarnfAlways("Ignoring unknown key %s in %s", key, path)
	}
}

// Commands returns every top-level command group.
func Commands() []*cobra.Command {
	return []*cobra.Command{CipherCmd, DHCmd, RSACmd, ConfigCmd, HistoryCmd}
}

// ResetGlobalState resets flag variables and cobra flag state between test
// runs.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetCipherState()
	resetDHState()
	resetRSAState()
	resetConfigState()
	resetHistoryState()
	for _, c := range Commands() {
		resetCobraFlagState(c)
	}
}

// resetCobraFlagState clears Changed on every flag of c and its children.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
		_ = flag.Value.Set(flag.DefValue)
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetCobraFlagState(child)
	}
}

// failureMessage turns a workflow error into the message shown to the user.
func failureMessage(action string, err error) string {
	msg := ui.Error.Sprint("✗") + " Failed to " + action + "\n" +
		ui.Error.Sprint("Error: ") + err.Error()

	if hint := errorHint(err); hint != "" {
		msg += "\n" + ui.Info.Sprint("→") + " " + hint
	}
	return msg
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrUnknownCipher):
		return "Run " + ui.Code.Sprint("cipherkit cipher list") + " to see the available ciphers"
	case errors.Is(err, kerrors.ErrInvalidKey):
		return "Check the key flags: affine " + ui.Flag.Sprint("-a") + " must be coprime with 26 and keywords need at least one letter. " +
			"RSA " + ui.Flag.Sprint("-p") + " and " + ui.Flag.Sprint("-q") + " must be distinct primes"
	case errors.Is(err, kerrors.ErrNoInverse):
		return "Choose a key that is coprime with the modulus"
	case errors.Is(err, kerrors.ErrInvalidConfig):
		return "Fix the config file or run " + ui.Code.Sprint("cipherkit config init --force") + " to reset it"
	case errors.Is(err, kerrors.ErrConfigExists):
		return "Use " + ui.Flag.Sprint("--force") + " to overwrite it"
	case errors.Is(err, kerrors.ErrInvalidParams):
		return "The modulus must be prime and the generator must lie between 1 and p"
	case errors.Is(err, kerrors.ErrOutOfRange):
		return "Values must be smaller than the modulus"
	}
	return ""
}

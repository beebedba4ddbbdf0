package cmd

import (
	"strconv"

	"github.com/PolarWolf314/cipherkit/internal/rsa"
	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/PolarWolf314/cipherkit/internal/workflows"
	"github.com/spf13/cobra"
)

// RSACmd groups the textbook RSA commands.
var RSACmd = &cobra.Command{
	Use:   "rsa",
	Short: "Textbook RSA on small integers",
	Long: `Derives RSA key pairs from two primes and encrypts, decrypts, signs and
verifies integers below the modulus.

Every command takes the primes with -p and -q. The public exponent defaults
to the smallest valid one; use -e to choose it.

Examples:
  cipherkit rsa keygen -p 7 -q 11
  cipherkit rsa encrypt -p 7 -q 11 9
  cipherkit rsa sign -p 61 -q 53 65
  cipherkit rsa verify -p 61 -q 53 65 <signature>`,
}

var (
	rsaP uint64
	rsaQ uint64
	rsaE uint64
)

func init() {
	addLoggingFlags(RSACmd)

	RSACmd.PersistentFlags().Uint64VarP(&rsaP, "p", "p", 0, "first prime")
	RSACmd.PersistentFlags().Uint64VarP(&rsaQ, "q", "q", 0, "second prime")
	RSACmd.PersistentFlags().Uint64VarP(&rsaE, "e", "e", 0, "public exponent (default smallest valid)")

	RSACmd.AddCommand(rsaKeygenCmd)
	RSACmd.AddCommand(rsaEncryptCmd)
	RSACmd.AddCommand(rsaDecryptCmd)
	RSACmd.AddCommand(rsaSignCmd)
	RSACmd.AddCommand(rsaVerifyCmd)
}

func resetRSAState() {
	rsaP, rsaQ, rsaE = 0, 0, 0
}

func rsaKeyOptions(cmd *cobra.Command) workflows.KeyOptions {
	opts := workflows.KeyOptions{P: rsaP, Q: rsaQ}
	if cmd.Flags().Changed("e") {
		opts.E = &rsaE
	}
	return opts
}

func keyFields(kp *rsa.KeyPair) []ui.Field {
	return []ui.Field{
		{Label: "n", Value: strconv.FormatUint(kp.Public.N, 10)},
		{Label: "phi", Value: strconv.FormatUint(kp.Phi, 10)},
		{Label: "public (e, n)", Value: ui.Key.Sprintf("(%d, %d)", kp.Public.E, kp.Public.N)},
		{Label: "private (d, n)", Value: ui.Key.Sprintf("(%d, %d)", kp.Private.D, kp.Private.N)},
	}
}

var rsaKeygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Derive a key pair from two primes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting rsa keygen command")
		spinner, cleanup := startSpinner("Deriving key pair...", false)
		defer cleanup()

		result, err := workflows.Keygen(cmd.Context(), workflows.KeygenOptions{KeyOptions: rsaKeyOptions(cmd)})
		if err != nil {
			Logger.Errorf("rsa keygen failed: %v", err)
			spinner.FinalMSG = failureMessage("derive the key pair", err)
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Key pair derived from p=" +
			strconv.FormatUint(result.P, 10) + " q=" + strconv.FormatUint(result.Q, 10) + "\n" +
			ui.Fields(keyFields(result.KeyPair)...)
		return nil
	},
}

package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/PolarWolf314/cipherkit/internal/workflows"
	"github.com/spf13/cobra"
)

// DHCmd groups the Diffie–Hellman commands.
var DHCmd = &cobra.Command{
	Use:   "dh",
	Short: "Run Diffie–Hellman key exchanges",
	Long: `Simulates a Diffie–Hellman key exchange between two parties over a
small prime group. The group defaults to the [exchange] section of the
config file.`,
}

var (
	dhP        uint64
	dhG        uint64
	dhPrivateA uint64
	dhPrivateB uint64
	dhMessage  string
)

func init() {
	addLoggingFlags(DHCmd)

	dhExchangeCmd.Flags().Uint64VarP(&dhP, "prime", "p", 0, "prime modulus (default from config)")
	dhExchangeCmd.Flags().Uint64VarP(&dhG, "generator", "g", 0, "generator (default from config)")
	dhExchangeCmd.Flags().Uint64Var(&dhPrivateA, "private-a", 0, "party A private exponent (random if unset)")
	dhExchangeCmd.Flags().Uint64Var(&dhPrivateB, "private-b", 0, "party B private exponent (random if unset)")
	dhExchangeCmd.Flags().StringVarP(&dhMessage, "message", "m", "", "message for A to seal and B to open with the agreed key")

	DHCmd.AddCommand(dhExchangeCmd)
}

func resetDHState() {
	dhP, dhG, dhPrivateA, dhPrivateB = 0, 0, 0, 0
	dhMessage = ""
}

var dhExchangeCmd = &cobra.Command{
	Use:   "exchange",
	Short: "Agree on a shared secret between two simulated parties",
	Long: `Agree on a shared secret between two simulated parties.

Examples:
  # Textbook exchange
  cipherkit dh exchange -p 23 -g 5 --private-a 4 --private-b 3

  # Random exponents, and seal a message with the agreed key
  cipherkit dh exchange --message "meet at noon"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting dh exchange command")
		spinner, cleanup := startSpinner("Exchanging keys...", false)
		defer cleanup()

		opts := workflows.ExchangeOptions{Message: dhMessage}
		flags := cmd.Flags()
		if flags.Changed("prime") {
			opts.P = &dhP
		}
		if flags.Changed("generator") {
			opts.G = &dhG
		}
		if flags.Changed("private-a") {
			opts.PrivateA = &dhPrivateA
		}
		if flags.Changed("private-b") {
			opts.PrivateB = &dhPrivateB
		}

		result, err := workflows.Exchange(cmd.Context(), opts)
		if err != nil {
			Logger.Errorf("dh exchange failed: %v", err)
			spinner.FinalMSG = failureMessage("exchange keys", err)
			return nil
		}

		if !result.PrimitiveRootKnown {
			Logger.Infof("Skipped primitive root check for p=%d", result.Params.P)
		} else if !result.PrimitiveRoot {
			Logger.WarnfAlways("%d is not a primitive root mod %d; the key space is smaller than p-1", result.Params.G, result.Params.P)
		}

		fields := []ui.Field{
			{Label: "p", Value: strconv.FormatUint(result.Params.P, 10)},
			{Label: "g", Value: strconv.FormatUint(result.Params.G, 10)},
			{Label: "A private", Value: strconv.FormatUint(result.PrivateA, 10)},
			{Label: "B private", Value: strconv.FormatUint(result.PrivateB, 10)},
			{Label: "A public", Value: strconv.FormatUint(result.PublicA, 10)},
			{Label: "B public", Value: strconv.FormatUint(result.PublicB, 10)},
			{Label: "shared secret", Value: ui.Key.Sprint(result.SharedSecret)},
		}
		if len(result.Sealed) > 0 {
			fields = append(fields,
				ui.Field{Label: "sealed by A", Value: hex.EncodeToString(result.Sealed)},
				ui.Field{Label: "opened by B", Value: ui.Output.Sprint(result.Opened)},
			)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Both parties agreed on a shared secret\n" +
			ui.Fields(fields...) +
			fmt.Sprint(ui.Warning.Sprint("⚠"), " Toy parameters, do not use for real secrets")
		return nil
	},
}

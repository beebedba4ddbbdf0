package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/PolarWolf314/cipherkit/internal/utils"
	"github.com/PolarWolf314/cipherkit/internal/workflows"
	"github.com/spf13/cobra"
)

type rsaWorkflow func(ctx context.Context, opts workflows.RSAOptions) (*workflows.RSAResult, error)

var (
	rsaEncryptCmd = newRSACommand("encrypt", "message", "ciphertext", workflows.RSAEncrypt)
	rsaDecryptCmd = newRSACommand("decrypt", "ciphertext", "message", workflows.RSADecrypt)
	rsaSignCmd    = newRSACommand("sign", "message", "signature", workflows.RSASign)
)

func newRSACommand(op, inName, outName string, run rsaWorkflow) *cobra.Command {
	return &cobra.Command{
		Use:   op + " <" + inName + ">",
		Short: fmt.Sprintf("Compute the %s for an integer %s", outName, inName),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting rsa %s command", op)

			value, err := utils.ParseUint(inName, args[0])
			if err != nil {
				return Logger.ErrorfAndReturn("Invalid argument: %w", err)
			}

			spinner, cleanup := startSpinner("Running rsa "+op+"...", false)
			defer cleanup()

			result, err := run(cmd.Context(), workflows.RSAOptions{KeyOptions: rsaKeyOptions(cmd), Value: value})
			if err != nil {
				Logger.Errorf("rsa %s failed: %v", op, err)
				spinner.FinalMSG = failureMessage(op+" "+args[0], err)
				return nil
			}
			Logger.Debugf("Used key e=%d d=%d n=%d", result.KeyPair.Public.E, result.KeyPair.Private.D, result.KeyPair.Public.N)

			spinner.FinalMSG = ui.Success.Sprint("✓") + " " + inName + " " + strconv.FormatUint(result.Input, 10) +
				" → " + outName + " " + ui.Output.Sprint(strconv.FormatUint(result.Output, 10))
			return nil
		},
	}
}

var rsaVerifyCmd = &cobra.Command{
	Use:   "verify <message> <signature>",
	Short: "Check a signature against a message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting rsa verify command")

		message, err := utils.ParseUint("message", args[0])
		if err != nil {
			return Logger.ErrorfAndReturn("Invalid argument: %w", err)
		}
		signature, err := utils.ParseUint("signature", args[1])
		if err != nil {
			return Logger.ErrorfAndReturn("Invalid argument: %w", err)
		}

		spinner, cleanup := startSpinner("Verifying signature...", false)
		defer cleanup()

		result, err := workflows.RSAVerify(cmd.Context(), workflows.VerifyOptions{
			KeyOptions: rsaKeyOptions(cmd),
			Message:    message,
			Signature:  signature,
		})
		if err != nil {
			Logger.Errorf("rsa verify failed: %v", err)
			spinner.FinalMSG = failureMessage("verify the signature", err)
			return nil
		}

		if !result.Valid {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Signature " + args[1] + " does not match message " + args[0]
			return nil
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Signature " + args[1] + " is valid for message " + args[0]
		return nil
	},
}

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PolarWolf314/cipherkit/internal/configs"
	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/PolarWolf314/cipherkit/internal/workflows"
	"github.com/spf13/cobra"
)

// ConfigCmd groups the configuration commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cipherkit configuration",
	Long: `Creates and displays the cipherkit config file.

The config file sets the default cipher, the default key of every cipher,
the Diffie–Hellman group and whether history is recorded.

Examples:
  # Write the default config file
  cipherkit config init

  # Show the effective configuration as JSON
  cipherkit config show --json`,
}

var (
	configInitForce bool
	configShowJSON  bool
)

func init() {
	addLoggingFlags(ConfigCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

func resetConfigState() {
	configInitForce = false
	configShowJSON = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		spinner, cleanup := startSpinner("Writing config...", false)
		defer cleanup()

		result, err := workflows.ConfigInit(cmd.Context(), workflows.ConfigInitOptions{Force: configInitForce})
		if err != nil {
			spinner.FinalMSG = failureMessage("write the config file", err)
			return nil
		}

		verb := "Created"
		if result.Overwritten {
			verb = "Reset"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " " + verb + " " + ui.Path.Sprint(result.Path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		Logger.Debugf("Flags: json=%t", configShowJSON)

		result, err := workflows.ConfigShow(cmd.Context())
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %w", err)
		}

		if configShowJSON {
			out, err := json.MarshalIndent(result.Config, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		source := ui.Path.Sprint(result.Path)
		if !result.FromFile {
			source = ui.Muted.Sprint("defaults, no config file")
		}
		fmt.Println(ui.Info.Sprint("Configuration") + " " + source + ":")
		fmt.Println()
		fields := configFields(result.Config)
		if len(result.Unknown) > 0 {
			fields = append(fields, ui.Field{Label: "ignored keys", Value: ui.Warning.Sprint(strings.Join(result.Unknown, ", "))})
		}
		fmt.Print(ui.Fields(fields...))
		return nil
	},
}

func configFields(c *configs.Config) []ui.Field {
	return []ui.Field{
		{Label: "default cipher", Value: c.Cipher.Default},
		{Label: "caesar shift", Value: strconv.Itoa(c.Caesar.Shift)},
		{Label: "affine a, b", Value: fmt.Sprintf("%d, %d", c.Affine.A, c.Affine.B)},
		{Label: "vigenere keyword", Value: c.Vigenere.Keyword},
		{Label: "playfair keyword", Value: c.Playfair.Keyword},
		{Label: "playfair filler", Value: c.Playfair.Filler},
		{Label: "transposition keyword", Value: c.Transposition.Keyword},
		{Label: "exchange p, g", Value: fmt.Sprintf("%d, %d", c.Exchange.P, c.Exchange.G)},
		{Label: "history", Value: strconv.FormatBool(c.History.Enabled)},
	}
}

package cmd

import (
	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/PolarWolf314/cipherkit/internal/workflows"
	"github.com/spf13/cobra"
)

var gridKeyword string

func init() {
	cipherGridCmd.Flags().StringVarP(&gridKeyword, "key", "k", "", "Playfair keyword (default from config)")
}

func resetGridState() {
	gridKeyword = ""
}

var cipherGridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the Playfair square for a keyword",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting cipher grid command")
		spinner, cleanup := startSpinner("Building Playfair grid...", false)
		defer cleanup()

		opts := workflows.GridOptions{}
		if cmd.Flags().Changed("key") {
			opts.Keyword = &gridKeyword
		}

		result, err := workflows.Grid(cmd.Context(), opts)
		if err != nil {
			spinner.FinalMSG = failureMessage("build the grid", err)
			return nil
		}
		Logger.Debugf("Prepared keyword %q", result.Prepared)

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Playfair grid for " + ui.Key.Sprint(result.Keyword) + "\n" +
			ui.Grid(result.Rows)
		return nil
	},
}

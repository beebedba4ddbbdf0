package cmd

import (
	"fmt"

	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/PolarWolf314/cipherkit/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

// HistoryCmd lists or clears recorded operations.
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently completed operations",
	Long: `Shows the operations cipherkit has completed, newest last.

Only the operation, cipher and input and output sizes are recorded. Text and
keys are never written to the history file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting history command")
		Logger.Debugf("Flags: limit=%d, clear=%t", historyLimit, historyClear)

		if historyLimit < 0 {
			return Logger.ErrorfAndReturn("--limit must not be negative, got %d", historyLimit)
		}

		result, err := workflows.History(cmd.Context(), workflows.HistoryOptions{Limit: historyLimit, Clear: historyClear})
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to access history: %w", err)
		}

		if result.Cleared {
			fmt.Println(ui.Success.Sprint("✓") + " History cleared")
			return nil
		}

		if result.Total == 0 {
			fmt.Println(ui.Info.Sprint("→") + " No operations recorded yet")
			return nil
		}

		for _, e := range result.Entries {
			cipher := e.Cipher
			if cipher == "" {
				cipher = "-"
			}
			fmt.Printf("%s  %-12s %-15s %d → %d\n",
				ui.Muted.Sprint(e.Timestamp), e.Operation, cipher, e.InputLen, e.OutputLen)
		}
		if len(result.Entries) < result.Total {
			fmt.Println(ui.Muted.Sprintf("showing %d of %d", len(result.Entries), result.Total))
		}
		return nil
	},
}

func init() {
	addLoggingFlags(HistoryCmd)

	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show, 0 for all")
	HistoryCmd.Flags().BoolVar(&historyClear, "clear", false, "delete the history file")
}

func resetHistoryState() {
	historyLimit = 20
	historyClear = false
}

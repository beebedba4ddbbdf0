package cmd

import (
	"fmt"

	"github.com/PolarWolf314/cipherkit/internal/ciphers"
	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/spf13/cobra"
)

var cipherDescriptions = map[ciphers.Kind]string{
	ciphers.KindCaesar:        "shift every letter by --shift",
	ciphers.KindAffine:        "map x to a*x + b mod 26 with -a and -b",
	ciphers.KindVigenere:      "shift by the letters of --key",
	ciphers.KindVigenereTable: "Vigenère through a 26x26 tableau",
	ciphers.KindPlayfair:      "digraphs on a 5x5 square built from --key",
	ciphers.KindKeyless:       "column transposition on a square grid",
	ciphers.KindKeyed:         "column transposition ordered by --key",
}

var cipherListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available ciphers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		Logger.Infof("Listing %d ciphers", len(ciphers.Kinds()))

		fmt.Println(ui.Info.Sprint("Available ciphers:"))
		for _, k := range ciphers.Kinds() {
			fmt.Printf("  %-16s %s\n", k, ui.Muted.Sprint(cipherDescriptions[k]))
		}
	},
}

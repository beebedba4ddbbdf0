package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/cipherkit/cmd"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cipherkit",
	Short: "cipherkit - classical ciphers, Diffie–Hellman and textbook RSA",
	Long: `cipherkit is a teaching toolkit for classical and early public-key
cryptography.

Features:
  - Caesar, affine, Vigenère, Playfair and transposition ciphers
  - Diffie–Hellman key exchange over small prime groups
  - Textbook RSA key derivation, encryption and signatures

Usage:
  cipherkit <command> [flags]

Run 'cipherkit help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		figure.NewFigure("cipherkit", "small", true).Print()
		fmt.Println()
		fmt.Println("Run 'cipherkit --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.Commands()...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"github.com/spf13/cobra"
)

// CipherCmd groups the classical cipher commands.
var CipherCmd = &cobra.Command{
	Use:   "cipher",
	Short: "Encrypt and decrypt text with classical ciphers",
	Long: `Provides encryption and decryption with the Caesar, affine, Vigenère,
Playfair and transposition ciphers.

Keys not given on the command line are taken from the config file.

Examples:
  # Encrypt with the default cipher
  cipherkit cipher encrypt HELLO WORLD

  # Vigenère with an explicit keyword
  cipherkit cipher encrypt --type vigenere --key LEMON ATTACK AT DAWN

  # Decrypt piped input
  echo "KHOOR ZRUOG" | cipherkit cipher decrypt --type caesar --shift 3

  # Show the Playfair square for a keyword
  cipherkit cipher grid --key MONARCHY`,
}

func init() {
	addLoggingFlags(CipherCmd)

	CipherCmd.AddCommand(cipherEncryptCmd)
	CipherCmd.AddCommand(cipherDecryptCmd)
	CipherCmd.AddCommand(cipherGridCmd)
	CipherCmd.AddCommand(cipherListCmd)
}

func resetCipherState() {
	encryptFlags = cipherFlags{}
	decryptFlags = cipherFlags{}
	resetGridState()
}

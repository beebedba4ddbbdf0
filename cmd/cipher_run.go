package cmd

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/PolarWolf314/cipherkit/internal/ui"
	"github.com/PolarWolf314/cipherkit/internal/utils"
	"github.com/PolarWolf314/cipherkit/internal/workflows"
	"github.com/spf13/cobra"
)

type cipherFlags struct {
	kind    string
	shift   int
	a       int
	b       int
	keyword string
	filler  string
	raw     bool
}

var (
	encryptFlags cipherFlags
	decryptFlags cipherFlags
)

var cipherEncryptCmd = newCipherCommand("encrypt", "Encrypt text", &encryptFlags, workflows.Encrypt)

var cipherDecryptCmd = newCipherCommand("decrypt", "Decrypt text", &decryptFlags, workflows.Decrypt)

type cipherWorkflow func(ctx context.Context, opts workflows.CipherOptions) (*workflows.CipherResult, error)

func newCipherCommand(op, short string, f *cipherFlags, run cipherWorkflow) *cobra.Command {
	c := &cobra.Command{
		Use:   op + " [text...]",
		Short: short,
		Long: short + ` with one of the classical ciphers.

The text is taken from the arguments, or from stdin when no arguments are
given. Use --type to pick the cipher; run 'cipherkit cipher list' to see them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting cipher %s command", op)

			opts, err := f.options(cmd)
			if err != nil {
				return Logger.ErrorfAndReturn("Invalid flags: %w", err)
			}

			text, err := utils.ReadText(args, os.Stdin)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to read input: %w", err)
			}
			opts.Text = text
			Logger.Debugf("Read %d characters of input", utf8.RuneCountInString(text))

			spinner, cleanup := startSpinner(op+"ing text...", f.raw)
			defer cleanup()

			result, err := run(cmd.Context(), opts)
			if err != nil {
				Logger.Errorf("cipher %s failed: %v", op, err)
				spinner.FinalMSG = failureMessage(op+" text", err)
				return nil
			}
			Logger.Infof("Used %s with key %s", result.Kind, result.Key)

			if f.raw {
				fmt.Println(result.Output)
				return nil
			}

			spinner.FinalMSG = ui.Success.Sprint("✓") + " " + capitalize(op) + "ed with " +
				ui.Info.Sprint(string(result.Kind)) + " " + ui.Muted.Sprint("key "+result.Key) + "\n" +
				ui.Output.Sprint(result.Output)
			return nil
		},
	}

	c.Flags().StringVarP(&f.kind, "type", "t", "", "cipher to use (default from config)")
	c.Flags().IntVar(&f.shift, "shift", 0, "Caesar shift")
	c.Flags().IntVarP(&f.a, "a", "a", 0, "affine multiplier, coprime with 26")
	c.Flags().IntVarP(&f.b, "b", "b", 0, "affine offset")
	c.Flags().StringVarP(&f.keyword, "key", "k", "", "keyword for Vigenère, Playfair or keyed transposition")
	c.Flags().StringVar(&f.filler, "filler", "", "Playfair filler letter")
	c.Flags().BoolVar(&f.raw, "raw", false, "print only the result")

	return c
}

// options builds workflow options from the flags the user actually set.
func (f *cipherFlags) options(cmd *cobra.Command) (workflows.CipherOptions, error) {
	opts := workflows.CipherOptions{Kind: f.kind}
	flags := cmd.Flags()

	if flags.Changed("shift") {
		opts.Shift = &f.shift
	}
	if flags.Changed("a") {
		opts.A = &f.a
	}
	if flags.Changed("b") {
		opts.B = &f.b
	}
	if flags.Changed("key") {
		opts.Keyword = &f.keyword
	}
	if flags.Changed("filler") {
		r := []rune(f.filler)
		if len(r) != 1 {
			return opts, fmt.Errorf("--filler must be a single letter, got %q", f.filler)
		}
		opts.Filler = &r[0]
	}
	return opts, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

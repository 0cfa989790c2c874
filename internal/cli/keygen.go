package cli

import (
	"fmt"

	"blockmodes/internal/crypto"
	"blockmodes/internal/errors"
	"blockmodes/internal/util"

	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a random key or passphrase",
	Long: `Generate a random 128-bit key as 32 hex characters, or a random
passphrase with --passphrase.

Examples:
  # Print a key
  blockmodes keygen

  # Save a key for --key-file
  blockmodes keygen -o my.key

  # Generate a 24-character passphrase with symbols
  blockmodes keygen --passphrase --length 24 --symbols`,
	Args: cobra.NoArgs,
	RunE: runKeygen,
}

// Keygen flags
var (
	keygenOutput     string
	keygenPassphrase bool
	keygenLength     int
	keygenSymbols    bool
	keygenYes        bool
)

func init() {
	rootCmd.AddCommand(keygenCmd)

	keygenCmd.Flags().StringVarP(&keygenOutput, "output", "o", "", "Write to this file instead of stdout")
	keygenCmd.Flags().BoolVar(&keygenPassphrase, "passphrase", false, "Generate a passphrase instead of a key")
	keygenCmd.Flags().IntVar(&keygenLength, "length", 20, "Passphrase length")
	keygenCmd.Flags().BoolVar(&keygenSymbols, "symbols", false, "Include symbols in the passphrase")
	keygenCmd.Flags().BoolVarP(&keygenYes, "yes", "y", false, "Overwrite output file if it exists")
}

func runKeygen(cmd *cobra.Command, args []string) error {
	o := &cryptOptions{output: keygenOutput, yes: keygenYes}
	if err := o.checkOutput(); err != nil {
		return err
	}

	var secret string
	if keygenPassphrase {
		if keygenLength < 8 {
			return errors.NewValidationError("length", fmt.Sprintf("%d is too short, use at least 8", keygenLength))
		}
		pw, err := util.GenPassword(util.PassgenOptions{
			Length:  keygenLength,
			Upper:   true,
			Lower:   true,
			Numbers: true,
			Symbols: keygenSymbols,
		})
		if err != nil {
			return err
		}
		secret = pw
	} else {
		key, err := crypto.RandomKey()
		if err != nil {
			return err
		}
		secret = key.String()
		crypto.ZeroKey(&key)
	}

	out := []byte(secret + "\n")
	defer crypto.SecureZero(out)
	return writeOutput(cmd, keygenOutput, out)
}

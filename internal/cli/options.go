package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"blockmodes/internal/block"
	"blockmodes/internal/log"
	"blockmodes/internal/modes"

	"github.com/spf13/cobra"
)

// cryptOptions holds the flags shared by encrypt and decrypt.
type cryptOptions struct {
	input  string
	output string

	mode   string
	cipher string

	keyHex          string
	keyFile         string
	passphrase      string
	passphraseStdin bool

	reedSolomon bool
	hexText     bool

	quiet bool
	yes   bool
}

func (o *cryptOptions) register(cmd *cobra.Command, verb string) {
	f := cmd.Flags()

	// Input/Output
	f.StringVarP(&o.input, "input", "i", "", "Input file to "+verb+" (default stdin)")
	f.StringVarP(&o.output, "output", "o", "", "Output file (default stdout)")

	// Algorithm
	f.StringVarP(&o.mode, "mode", "m", modes.ModeCBC.String(), "Mode of operation: ecb, cbc or ctr")
	f.StringVarP(&o.cipher, "cipher", "c", block.NameAES, "Block cipher: aes or serpent")

	// Credentials
	f.StringVarP(&o.keyHex, "key", "k", "", "128-bit key as 32 hex characters")
	f.StringVar(&o.keyFile, "key-file", "", "File holding the key (16 raw bytes or 32 hex characters)")
	f.StringVarP(&o.passphrase, "passphrase", "p", "", "Derive the key from this passphrase with Argon2id")
	f.BoolVarP(&o.passphraseStdin, "passphrase-stdin", "P", false, "Read the passphrase from stdin")

	// Framing
	f.BoolVar(&o.reedSolomon, "reed-solomon", false, "Reed-Solomon armor (50% size overhead)")
	f.BoolVar(&o.hexText, "hex", false, "Hex text instead of raw bytes for the ciphertext")

	// Other
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress status output")
	f.BoolVarP(&o.yes, "yes", "y", false, "Overwrite output file if it exists")
}

// newCipher resolves --mode and --cipher to a driver logging through logger.
func (o *cryptOptions) newCipher(logger log.Logger) (modes.Cipher, block.Transform, error) {
	m, err := modes.ParseMode(o.mode)
	if err != nil {
		return nil, nil, err
	}
	t, err := block.Lookup(o.cipher)
	if err != nil {
		return nil, nil, err
	}
	c, err := modes.New(m, t, modes.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return c, t, nil
}

func (o *cryptOptions) readsStdin() bool {
	return o.input == "" || o.input == "-"
}

func (o *cryptOptions) destination() string {
	if o.output == "" || o.output == "-" {
		return "stdout"
	}
	return o.output
}

// checkOutput refuses to clobber an existing file without --yes.
func (o *cryptOptions) checkOutput() error {
	if o.destination() == "stdout" {
		return nil
	}
	if _, err := os.Stat(o.output); err == nil && !o.yes {
		return fmt.Errorf("output file %s already exists (use -y to overwrite)", o.output)
	}
	return nil
}

// readInput reads the whole input file, or stdin when no path is given.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input file not found: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input must be a file, not a directory: %s", path)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to stdout or, via a .incomplete file and a rename,
// to path. An interrupted command writes nothing.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if ctx := cmd.Context(); ctx != nil && ctx.Err() != nil {
		return fmt.Errorf("operation cancelled: %w", context.Cause(ctx))
	}

	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	tmp := path + ".incomplete"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

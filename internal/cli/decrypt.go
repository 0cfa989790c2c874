package cli

import (
	"time"

	"blockmodes/internal/crypto"
	"blockmodes/internal/log"
	"blockmodes/internal/util"

	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt data produced by encrypt",
	Long: `Decrypt a file (or stdin) produced by blockmodes encrypt.

--mode, --cipher, --reed-solomon and --hex must match the encrypt call,
and so must the kind of key (raw key or passphrase). Nothing is
authenticated: a wrong key or a wrong mode produces garbage, not an error.

Examples:
  # Decrypt with a hex key
  blockmodes decrypt -i secret.bin -o secret.txt -k 066c4acbaad45eeeab681311f8c57f8a

  # Decrypt CTR/Serpent output
  blockmodes decrypt -i data.bin -o data.db -m ctr -c serpent --key-file my.key

  # Decrypt a damaged armored file (up to 4 bad bytes per 24 are repaired)
  blockmodes decrypt -i photo.bin -o photo.jpg --reed-solomon

  # Read the passphrase from stdin (for scripts)
  echo "my passphrase" | blockmodes decrypt -i secret.bin -P`,
	RunE: runDecrypt,
}

var decOpts cryptOptions

func init() {
	rootCmd.AddCommand(decryptCmd)
	decOpts.register(decryptCmd, "decrypt")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	o := &decOpts
	reporter := NewReporter(cmd.ErrOrStderr(), o.quiet)
	logger := log.GetLogger().WithFields(log.String("command", "decrypt"))

	c, t, err := o.newCipher(logger)
	if err != nil {
		return err
	}
	if err := o.checkOutput(); err != nil {
		return err
	}

	creds, err := resolveCredentials(cmd, o, false)
	if err != nil {
		return err
	}
	defer creds.wipe()

	raw, err := readInput(cmd, o.input)
	if err != nil {
		return err
	}

	salt, ciphertext, damage, err := o.envelope(creds.usesPassphrase()).open(raw)
	if err != nil {
		return err
	}
	if damage != nil {
		reporter.Warn("%v; decrypting the unrepaired bytes as they are", damage)
	}

	if creds.usesPassphrase() {
		reporter.Status("Deriving key with Argon2id...")
	}
	start := time.Now()
	key, err := creds.keyFor(salt)
	if err != nil {
		return err
	}
	defer crypto.ZeroKey(&key)

	plaintext, err := c.Decrypt(ciphertext, key)
	if err != nil {
		return err
	}
	defer crypto.SecureZero(plaintext)

	if err := writeOutput(cmd, o.output, plaintext); err != nil {
		return err
	}

	logger.Info("decrypted",
		log.String("mode", c.Mode().String()),
		log.String("cipher", t.Name()),
		log.Int("input_bytes", len(raw)),
		log.Int("plaintext_bytes", len(plaintext)),
		log.Bool("damaged", damage != nil),
		log.Duration("elapsed", time.Since(start)))

	reporter.PrintSuccess("Decrypted %s with %s-%s to %s", util.Sizeify(int64(len(plaintext))), t.Name(), c.Mode(), o.destination())
	return nil
}

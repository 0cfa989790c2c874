package cli

import (
	"bytes"
	"fmt"
	"os"

	"blockmodes/internal/block"
	"blockmodes/internal/crypto"
	"blockmodes/internal/errors"

	"github.com/spf13/cobra"
)

// kdfParams are the Argon2id costs for passphrase keys.
var kdfParams = crypto.DefaultKDFParams

// credentials is the resolved key material: a raw key, or a passphrase
// that still needs a salt.
type credentials struct {
	key        block.Key
	passphrase []byte
}

func (c *credentials) usesPassphrase() bool {
	return c.passphrase != nil
}

// keyFor returns the block key, deriving it from salt for passphrases.
func (c *credentials) keyFor(salt []byte) (block.Key, error) {
	if !c.usesPassphrase() {
		return c.key, nil
	}
	return crypto.DeriveKey(c.passphrase, salt, kdfParams)
}

func (c *credentials) wipe() {
	crypto.ZeroKey(&c.key)
	crypto.SecureZero(c.passphrase)
}

// resolveCredentials picks the single key source the flags name, prompting
// on the terminal when none is given.
func resolveCredentials(cmd *cobra.Command, o *cryptOptions, confirm bool) (*credentials, error) {
	given := 0
	for _, set := range []bool{o.keyHex != "", o.keyFile != "", o.passphrase != "", o.passphraseStdin} {
		if set {
			given++
		}
	}
	if given > 1 {
		return nil, errors.NewValidationError("key", "use only one of --key, --key-file, --passphrase and --passphrase-stdin")
	}

	switch {
	case o.keyHex != "":
		key, err := block.ParseKey(o.keyHex)
		if err != nil {
			return nil, err
		}
		return &credentials{key: key}, nil

	case o.keyFile != "":
		key, err := readKeyFile(o.keyFile)
		if err != nil {
			return nil, err
		}
		return &credentials{key: key}, nil

	case o.passphrase != "":
		return &credentials{passphrase: []byte(o.passphrase)}, nil

	case o.passphraseStdin:
		if o.readsStdin() {
			return nil, errors.NewValidationError("passphrase-stdin", "stdin is already the input; pass the input with -i")
		}
		pw, err := ReadPasswordFromStdin(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return &credentials{passphrase: []byte(pw)}, nil
	}

	// No key flag: prompt, unless stdin is piped data.
	if _, tty := terminalFd(cmd.InOrStdin()); !tty && o.readsStdin() {
		return nil, errors.ErrNoKey
	}
	pw, err := ReadPasswordInteractive(cmd.InOrStdin(), cmd.ErrOrStderr(), confirm)
	if err != nil {
		return nil, fmt.Errorf("passphrase input: %w", err)
	}
	return &credentials{passphrase: []byte(pw)}, nil
}

// readKeyFile loads a key stored as 16 raw bytes or as 32 hex characters.
func readKeyFile(path string) (block.Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return block.Key{}, fmt.Errorf("key file not found: %s", path)
	}
	defer crypto.SecureZero(data)

	if len(data) == block.KeySize {
		return block.KeyFromBytes(data)
	}
	if text := bytes.TrimSpace(data); len(text) == 2*block.KeySize {
		return block.ParseKey(string(text))
	}
	return block.Key{}, errors.NewValidationError("key-file",
		fmt.Sprintf("%s holds %d bytes, want %d raw bytes or %d hex characters", path, len(data), block.KeySize, 2*block.KeySize))
}

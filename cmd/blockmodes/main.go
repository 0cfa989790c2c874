// blockmodes encrypts and decrypts data with a 128-bit block cipher in
// ECB, CBC or CTR mode:
//   - AES-128 (default) or Serpent-128 as the block transform
//   - Argon2id for passphrase keys
//   - Reed-Solomon armor for damaged-file recovery
//
// None of the modes authenticate.
package main

import (
	"os"

	"blockmodes/internal/cli"
)

// version is the application version printed by --version.
const version = "v1.0.0"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}

package crypto

import (
	"fmt"

	"blockmodes/internal/block"
	"blockmodes/internal/errors"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the Argon2id salt length stored ahead of passphrase-keyed payloads.
const SaltSize = 16

// KDFParams are the Argon2id cost parameters.
type KDFParams struct {
	Passes  uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams are used by the CLI.
//
// CRITICAL: changing these makes existing passphrase-keyed files undecryptable.
var DefaultKDFParams = KDFParams{
	Passes:  4,
	Memory:  1 << 16, // 64 MiB
	Threads: 4,
}

// DeriveKey derives a 128-bit block key from a passphrase and salt using Argon2id.
func DeriveKey(passphrase, salt []byte, p KDFParams) (block.Key, error) {
	if len(passphrase) == 0 {
		return block.Key{}, errors.NewCryptoError("argon2", fmt.Errorf("%w: empty passphrase", errors.ErrKeyDerivation))
	}
	if len(salt) != SaltSize {
		return block.Key{}, errors.NewCryptoError("argon2", fmt.Errorf("%w: salt is %d bytes, want %d", errors.ErrKeyDerivation, len(salt), SaltSize))
	}
	if p.Passes == 0 || p.Memory == 0 || p.Threads == 0 {
		return block.Key{}, errors.NewCryptoError("argon2", fmt.Errorf("%w: zero cost parameter", errors.ErrKeyDerivation))
	}

	raw := argon2.IDKey(passphrase, salt, p.Passes, p.Memory, p.Threads, block.KeySize)
	defer SecureZero(raw)

	// Sanity check: key should not be all zeros
	if allZero(raw) {
		return block.Key{}, errors.NewCryptoError("argon2", fmt.Errorf("%w: produced zero key", errors.ErrKeyDerivation))
	}
	return block.KeyFromBytes(raw)
}

package modes

import (
	"blockmodes/internal/block"
	"blockmodes/internal/crypto"
	"blockmodes/internal/encoding"
	"blockmodes/internal/errors"
	"blockmodes/internal/log"
)

// ECB is Electronic Code Book mode: every block is encrypted independently
// under the same key. Deterministic, no IV, and it leaks plaintext structure.
type ECB struct {
	t block.Transform
	o options
}

// NewECB returns an ECB driver over t (AES-128 when t is nil).
// WithRand has no effect on ECB.
func NewECB(t block.Transform, opts ...Option) *ECB {
	return &ECB{t: orDefault(t), o: newOptions(opts)}
}

// Mode returns ModeECB.
func (e *ECB) Mode() Mode {
	return ModeECB
}

// Encrypt pads and encrypts plaintext block by block.
// The output is len(Pad(plaintext)) bytes. The error is always nil.
func (e *ECB) Encrypt(plaintext []byte, key block.Key) ([]byte, error) {
	padded := encoding.Pad(plaintext)
	defer crypto.SecureZero(padded)

	blocks, err := encoding.Group(padded)
	if err != nil {
		return nil, errors.Wrap(err, "ecb encrypt")
	}
	parallelBlocks(len(blocks), e.o.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			blocks[i] = e.t.EncryptBlock(blocks[i], key)
		}
	})

	e.o.log().Debug("ecb encrypt", log.String("cipher", e.t.Name()), log.Int("blocks", len(blocks)))
	return encoding.Ungroup(blocks), nil
}

// Decrypt decrypts ciphertext block by block and removes the padding.
// ciphertext must be a whole number of blocks.
func (e *ECB) Decrypt(ciphertext []byte, key block.Key) ([]byte, error) {
	blocks, err := encoding.Group(ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "ecb decrypt")
	}
	defer crypto.ZeroBlocks(blocks)

	parallelBlocks(len(blocks), e.o.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			blocks[i] = e.t.DecryptBlock(blocks[i], key)
		}
	})

	e.o.log().Debug("ecb decrypt", log.String("cipher", e.t.Name()), log.Int("blocks", len(blocks)))
	return encoding.Unpad(encoding.Ungroup(blocks)), nil
}

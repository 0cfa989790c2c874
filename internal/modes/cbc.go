package modes

import (
	"blockmodes/internal/block"
	"blockmodes/internal/crypto"
	"blockmodes/internal/encoding"
	"blockmodes/internal/errors"
	"blockmodes/internal/log"
)

// CBC is Cipher Block Chaining mode.
//
// Each plaintext block is XORed with the previous ciphertext block before
// encryption; a fresh random IV stands in for the block before the first and
// is sent in the clear as the first ciphertext block. Encryption is
// sequential. Decryption is block-parallel because every chaining input is
// already in the ciphertext.
//
// A modified ciphertext byte garbles its own plaintext block and flips the
// same byte in the next one; every later block decrypts correctly.
type CBC struct {
	t block.Transform
	o options
}

// NewCBC returns a CBC driver over t (AES-128 when t is nil).
func NewCBC(t block.Transform, opts ...Option) *CBC {
	return &CBC{t: orDefault(t), o: newOptions(opts)}
}

// Mode returns ModeCBC.
func (c *CBC) Mode() Mode {
	return ModeCBC
}

// Encrypt returns IV ‖ C0 ‖ C1 ‖ ... where Ci = E(Pi ⊕ Ci-1) and C-1 = IV.
func (c *CBC) Encrypt(plaintext []byte, key block.Key) ([]byte, error) {
	var iv block.Block
	if err := crypto.Fill(c.o.randSource(), iv[:]); err != nil {
		return nil, errors.Wrap(err, "cbc encrypt: generating IV")
	}

	padded := encoding.Pad(plaintext)
	defer crypto.SecureZero(padded)

	blocks, err := encoding.Group(padded)
	if err != nil {
		return nil, errors.Wrap(err, "cbc encrypt")
	}
	defer crypto.ZeroBlocks(blocks)

	out := make([]block.Block, 0, len(blocks)+1)
	out = append(out, iv)
	prev := iv
	for _, p := range blocks {
		ct := c.t.EncryptBlock(xorBlock(p, prev), key)
		out = append(out, ct)
		prev = ct
	}

	c.o.log().Debug("cbc encrypt", log.String("cipher", c.t.Name()), log.Int("blocks", len(blocks)))
	return encoding.Ungroup(out), nil
}

// Decrypt treats the first block as the IV and returns the unpadded
// plaintext of the rest. A lone IV block decrypts to an empty plaintext.
func (c *CBC) Decrypt(ciphertext []byte, key block.Key) ([]byte, error) {
	blocks, err := encoding.Group(ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "cbc decrypt")
	}
	if len(blocks) == 0 {
		return nil, errors.Wrap(errors.ErrShortCiphertext, "cbc decrypt")
	}

	plain := make([]block.Block, len(blocks)-1)
	defer crypto.ZeroBlocks(plain)

	parallelBlocks(len(plain), c.o.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			// blocks[i] is the previous ciphertext block (the IV for i == 0).
			plain[i] = xorBlock(c.t.DecryptBlock(blocks[i+1], key), blocks[i])
		}
	})

	c.o.log().Debug("cbc decrypt", log.String("cipher", c.t.Name()), log.Int("blocks", len(plain)))
	return encoding.Unpad(encoding.Ungroup(plain)), nil
}

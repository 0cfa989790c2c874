package modes

import (
	"encoding/binary"

	"blockmodes/internal/block"
	"blockmodes/internal/crypto"
	"blockmodes/internal/encoding"
	"blockmodes/internal/errors"
	"blockmodes/internal/log"
)

// NonceSize is the CTR nonce length: the high half of every counter block.
const NonceSize = block.Size / 2

// CounterBlock builds the transform input for block i: the nonce in the
// high-order half and i, big-endian, in the low-order half.
func CounterBlock(nonce [NonceSize]byte, i uint64) block.Block {
	var b block.Block
	copy(b[:NonceSize], nonce[:])
	binary.BigEndian.PutUint64(b[NonceSize:], i)
	return b
}

// CTR is Counter mode.
//
// Keystream block i is E(nonce ‖ i); ciphertext is plaintext XOR keystream.
// The transform is only ever used in the encrypt direction, and each block
// depends only on (key, nonce, i), so both directions are block-parallel and
// a modified ciphertext byte flips exactly that plaintext byte.
//
// The first transmitted block carries the nonce in its high half and zeros in
// its low half. The 64-bit counter wraps after 2^64 blocks; inputs never get
// anywhere near that.
type CTR struct {
	t block.Transform
	o options
}

// NewCTR returns a CTR driver over t (AES-128 when t is nil).
func NewCTR(t block.Transform, opts ...Option) *CTR {
	return &CTR{t: orDefault(t), o: newOptions(opts)}
}

// Mode returns ModeCTR.
func (c *CTR) Mode() Mode {
	return ModeCTR
}

// Encrypt returns (nonce ‖ 0…0) ‖ C0 ‖ C1 ‖ ... where Ci = Pi ⊕ E(nonce ‖ i).
func (c *CTR) Encrypt(plaintext []byte, key block.Key) ([]byte, error) {
	var nonce [NonceSize]byte
	if err := crypto.Fill(c.o.randSource(), nonce[:]); err != nil {
		return nil, errors.Wrap(err, "ctr encrypt: generating nonce")
	}

	padded := encoding.Pad(plaintext)
	defer crypto.SecureZero(padded)

	blocks, err := encoding.Group(padded)
	if err != nil {
		return nil, errors.Wrap(err, "ctr encrypt")
	}
	defer crypto.ZeroBlocks(blocks)

	out := make([]block.Block, len(blocks)+1)
	copy(out[0][:NonceSize], nonce[:])
	c.keystreamXOR(out[1:], blocks, nonce, key)

	c.o.log().Debug("ctr encrypt", log.String("cipher", c.t.Name()), log.Int("blocks", len(blocks)))
	return encoding.Ungroup(out), nil
}

// Decrypt reads the nonce from the high half of the first block and
// regenerates the same keystream. The low half of that block is ignored.
func (c *CTR) Decrypt(ciphertext []byte, key block.Key) ([]byte, error) {
	blocks, err := encoding.Group(ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "ctr decrypt")
	}
	if len(blocks) == 0 {
		return nil, errors.Wrap(errors.ErrShortCiphertext, "ctr decrypt")
	}

	var nonce [NonceSize]byte
	copy(nonce[:], blocks[0][:NonceSize])

	plain := make([]block.Block, len(blocks)-1)
	defer crypto.ZeroBlocks(plain)
	c.keystreamXOR(plain, blocks[1:], nonce, key)

	c.o.log().Debug("ctr decrypt", log.String("cipher", c.t.Name()), log.Int("blocks", len(plain)))
	return encoding.Unpad(encoding.Ungroup(plain)), nil
}

// keystreamXOR sets dst[i] = src[i] ⊕ E(nonce ‖ i).
func (c *CTR) keystreamXOR(dst, src []block.Block, nonce [NonceSize]byte, key block.Key) {
	parallelBlocks(len(src), c.o.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			ks := c.t.EncryptBlock(CounterBlock(nonce, uint64(i)), key)
			dst[i] = xorBlock(src[i], ks)
			crypto.SecureZero(ks[:])
		}
	})
}

// Package block defines the fixed-size block and key types shared by every
// mode of operation, and the single-block Transform capability the modes are
// built on.
//
// The modes never look inside a Transform: any keyed, invertible 16-byte
// permutation can be plugged in. AES-128 and Serpent-128 are provided.
package block

import (
	"crypto/cipher"
	"encoding/hex"
	"fmt"

	"blockmodes/internal/errors"
)

// Size is the block length B in bytes.
const Size = 16

// KeySize is the key length in bytes.
const KeySize = 16

// Block is exactly one cipher block.
type Block [Size]byte

// Key is a 128-bit block cipher key.
type Key [KeySize]byte

// KeyFromBytes copies a 16-byte slice into a Key.
func KeyFromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: got %d bytes, want %d", errors.ErrInvalidKeySize, len(b), KeySize)
	}
	copy(k[:], b)
	return k, nil
}

// ParseKey decodes a 32-character hex string into a Key.
func ParseKey(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, errors.NewValidationError("key", "not valid hex: "+err.Error())
	}
	return KeyFromBytes(b)
}

// String returns the key as lowercase hex.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Transform is a keyed single-block permutation.
// Both methods are total: they never fail for a well-typed block and key.
type Transform interface {
	EncryptBlock(b Block, key Key) Block
	DecryptBlock(b Block, key Key) Block
	Name() string
}

// cipherTransform adapts a crypto/cipher.Block constructor to Transform.
// A fresh cipher is keyed on every call so no key schedule outlives the call.
type cipherTransform struct {
	name      string
	newCipher func(key []byte) (cipher.Block, error)
}

func (c *cipherTransform) keyed(key Key) cipher.Block {
	b, err := c.newCipher(key[:])
	if err != nil {
		// KeySize is valid for every registered cipher.
		panic(fmt.Sprintf("%s: keying with %d-byte key: %v", c.name, KeySize, err))
	}
	if b.BlockSize() != Size {
		panic(fmt.Sprintf("%s: block size %d, want %d", c.name, b.BlockSize(), Size))
	}
	return b
}

func (c *cipherTransform) EncryptBlock(b Block, key Key) Block {
	var out Block
	c.keyed(key).Encrypt(out[:], b[:])
	return out
}

func (c *cipherTransform) DecryptBlock(b Block, key Key) Block {
	var out Block
	c.keyed(key).Decrypt(out[:], b[:])
	return out
}

func (c *cipherTransform) Name() string {
	return c.name
}

// FromCipher wraps a crypto/cipher.Block constructor with a 16-byte block
// size as a Transform.
func FromCipher(name string, newCipher func(key []byte) (cipher.Block, error)) Transform {
	return &cipherTransform{name: name, newCipher: newCipher}
}

// Package crypto provides the randomness capability, key derivation and
// memory hygiene helpers used around the block modes.
package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"blockmodes/internal/block"
	"blockmodes/internal/errors"
)

// Reader is the default randomness source.
var Reader io.Reader = rand.Reader

// Fill reads len(b) bytes from r into b.
//
// A short read or an all-zero result is reported as ErrRandFailure.
func Fill(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		return errors.NewCryptoError("rand", fmt.Errorf("%w: %v", errors.ErrRandFailure, err))
	}
	if allZero(b) {
		return errors.NewCryptoError("rand", fmt.Errorf("%w: produced zero bytes", errors.ErrRandFailure))
	}
	return nil
}

// RandomBytes generates n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("length", "must be positive")
	}
	b := make([]byte, n)
	if err := Fill(Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// RandomKey generates a fresh random block key.
func RandomKey() (block.Key, error) {
	var k block.Key
	if err := Fill(Reader, k[:]); err != nil {
		return block.Key{}, err
	}
	return k, nil
}

func allZero(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

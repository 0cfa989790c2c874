package crypto

import (
	"crypto/subtle"

	"blockmodes/internal/block"
)

// SecureZero overwrites a byte slice with zeros to prevent sensitive data
// from persisting in memory.
//
// Due to Go's garbage collector and copying stacks this cannot guarantee
// complete erasure; it narrows the window during which keystream, padded
// plaintext and keys are recoverable from RAM.
//
// subtle.ConstantTimeCopy keeps the compiler from eliding the writes.
func SecureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// SecureZeroMultiple zeros multiple byte slices in a single call.
func SecureZeroMultiple(slices ...[]byte) {
	for _, s := range slices {
		SecureZero(s)
	}
}

// ZeroBlocks zeros every block in place.
func ZeroBlocks(blocks []block.Block) {
	for i := range blocks {
		SecureZero(blocks[i][:])
	}
}

// ZeroKey zeros a key in place.
func ZeroKey(k *block.Key) {
	if k == nil {
		return
	}
	SecureZero(k[:])
}

// Package encoding reshapes byte buffers for the block modes: PKCS#7-style
// padding, grouping into fixed-size blocks, and optional Reed-Solomon armor
// for ciphertext stored on unreliable media.
package encoding

import (
	"bytes"

	"blockmodes/internal/block"
)

// PadLen returns the length of Pad's output for an n-byte input.
func PadLen(n int) int {
	return n + block.Size - n%block.Size
}

// Pad appends N bytes of value N, where N = block.Size - len(data)%block.Size.
//
// N is never zero: data that already fills whole blocks gets one full block of
// 0x10 bytes, so the last byte of padded data always names the pad length.
// The input's backing array is never written.
//
// Example: 28-byte data → 32 bytes (4 bytes of 0x04 appended)
func Pad(data []byte) []byte {
	padLen := block.Size - len(data)%block.Size
	out := make([]byte, len(data), len(data)+padLen)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// Unpad strips the padding named by the last byte of data.
//
// Returns data unchanged if:
//   - data is empty
//   - the last byte is 0 or larger than len(data)
//
// Invalid padding is absorbed, not reported. Only the last byte is consulted,
// so a corrupted pad and a plaintext that happens to end in a pad-like byte
// are indistinguishable; callers needing integrity must authenticate the
// ciphertext separately.
func Unpad(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > len(data) {
		return data // Invalid padding, return as-is
	}
	return data[:len(data)-padLen]
}

package modes

import "blockmodes/internal/block"

// Package-level drivers over AES-128 with crypto/rand.
var (
	defaultECB = NewECB(block.AES)
	defaultCBC = NewCBC(block.AES)
	defaultCTR = NewCTR(block.AES)
)

// ECBEncrypt encrypts plaintext with AES-128 in ECB mode.
// Output length is the padded length, a positive multiple of 16.
func ECBEncrypt(plaintext []byte, key block.Key) []byte {
	out, _ := defaultECB.Encrypt(plaintext, key)
	return out
}

// ECBDecrypt reverses ECBEncrypt.
func ECBDecrypt(ciphertext []byte, key block.Key) ([]byte, error) {
	return defaultECB.Decrypt(ciphertext, key)
}

// CBCEncrypt encrypts plaintext with AES-128 in CBC mode under a fresh IV.
// Output is IV ‖ ciphertext blocks.
func CBCEncrypt(plaintext []byte, key block.Key) ([]byte, error) {
	return defaultCBC.Encrypt(plaintext, key)
}

// CBCDecrypt reverses CBCEncrypt.
func CBCDecrypt(ciphertext []byte, key block.Key) ([]byte, error) {
	return defaultCBC.Decrypt(ciphertext, key)
}

// CTREncrypt encrypts plaintext with AES-128 in CTR mode under a fresh nonce.
// Output is nonce block ‖ ciphertext blocks.
func CTREncrypt(plaintext []byte, key block.Key) ([]byte, error) {
	return defaultCTR.Encrypt(plaintext, key)
}

// CTRDecrypt reverses CTREncrypt.
func CTRDecrypt(ciphertext []byte, key block.Key) ([]byte, error) {
	return defaultCTR.Decrypt(ciphertext, key)
}

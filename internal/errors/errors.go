// Package errors provides typed errors for block mode operations.
// Callers use errors.Is() and errors.As() to tell failure classes apart.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrInvalidLength) to check for specific errors.
var (
	// Input shape errors
	ErrInvalidLength   = errors.New("length is not a multiple of the block size")
	ErrShortCiphertext = errors.New("ciphertext missing leading IV/nonce block")
	ErrInvalidKeySize  = errors.New("invalid key size")
	ErrNoKey           = errors.New("no key, key file or passphrase provided")
	ErrInvalidFormat   = errors.New("invalid envelope format")

	// Selection errors
	ErrUnknownMode   = errors.New("unknown mode of operation")
	ErrUnknownCipher = errors.New("unknown block cipher")

	// Crypto errors
	ErrRandFailure   = errors.New("randomness source failure")
	ErrKeyDerivation = errors.New("key derivation failed")

	// Reed-Solomon errors
	ErrRSDecode = errors.New("Reed-Solomon decoding failed")
)

// CryptoError represents an error during cryptographic operations.
// It wraps the underlying error with operation context.
type CryptoError struct {
	Op  string // Operation name: "rand", "argon2"
	Err error  // Underlying error
}

func (e *CryptoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crypto %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("crypto %s failed", e.Op)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError.
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// LengthError reports a buffer whose length cannot be split into whole blocks.
type LengthError struct {
	Op  string // Operation: "group", "ecb decrypt", "cbc decrypt", ...
	Len int    // Offending length
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: length %d: %v", e.Op, e.Len, ErrInvalidLength)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// NewLengthError creates a new LengthError.
func NewLengthError(op string, n int) *LengthError {
	return &LengthError{Op: op, Len: n}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Is checks if target matches any of our sentinel errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsMalformed checks if the error indicates input that is not shaped like ciphertext.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrInvalidLength) || errors.Is(err, ErrShortCiphertext)
}

// IsRandFailure checks if the error came from the randomness source.
func IsRandFailure(err error) bool {
	return errors.Is(err, ErrRandFailure)
}

package util

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"blockmodes/internal/crypto"
	"blockmodes/internal/errors"
)

// Character sets for GenPassword.
const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	numberChars = "1234567890"
	symbolChars = "-=_+!@#$^&()?<>"
)

// PassgenOptions configures the passphrase generator.
// At least one character set must be enabled.
type PassgenOptions struct {
	Length  int
	Upper   bool
	Lower   bool
	Numbers bool
	Symbols bool
}

// GenPassword draws a passphrase uniformly from the enabled character sets
// using crypto.Reader.
func GenPassword(opts PassgenOptions) (string, error) {
	chars := ""
	if opts.Upper {
		chars += upperChars
	}
	if opts.Lower {
		chars += lowerChars
	}
	if opts.Numbers {
		chars += numberChars
	}
	if opts.Symbols {
		chars += symbolChars
	}

	if len(chars) == 0 {
		return "", errors.NewValidationError("charset", "enable at least one character set")
	}
	if opts.Length <= 0 {
		return "", errors.NewValidationError("length", fmt.Sprintf("must be positive, got %d", opts.Length))
	}

	tmp := make([]byte, opts.Length)
	n := big.NewInt(int64(len(chars)))
	for i := range opts.Length {
		j, err := rand.Int(crypto.Reader, n)
		if err != nil {
			return "", errors.NewCryptoError("rand", fmt.Errorf("%w: %v", errors.ErrRandFailure, err))
		}
		tmp[i] = chars[j.Int64()]
	}
	return string(tmp), nil
}

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidLength", ErrInvalidLength},
		{"ErrShortCiphertext", ErrShortCiphertext},
		{"ErrInvalidKeySize", ErrInvalidKeySize},
		{"ErrNoKey", ErrNoKey},
		{"ErrInvalidFormat", ErrInvalidFormat},
		{"ErrUnknownMode", ErrUnknownMode},
		{"ErrUnknownCipher", ErrUnknownCipher},
		{"ErrRandFailure", ErrRandFailure},
		{"ErrKeyDerivation", ErrKeyDerivation},
		{"ErrRSDecode", ErrRSDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Error("sentinel error should not be nil")
			}
			if tt.err.Error() == "" {
				t.Error("sentinel error should have a message")
			}
		})
	}
}

func TestCryptoError(t *testing.T) {
	baseErr := errors.New("underlying error")
	cryptoErr := NewCryptoError("rand", baseErr)

	if cryptoErr.Error() != "crypto rand: underlying error" {
		t.Errorf("unexpected error message: %s", cryptoErr.Error())
	}
	if cryptoErr.Unwrap() != baseErr {
		t.Error("Unwrap should return underlying error")
	}

	cryptoErrNil := NewCryptoError("argon2", nil)
	if cryptoErrNil.Error() != "crypto argon2 failed" {
		t.Errorf("unexpected error message: %s", cryptoErrNil.Error())
	}
}

func TestLengthError(t *testing.T) {
	err := NewLengthError("group", 17)

	if !errors.Is(err, ErrInvalidLength) {
		t.Error("LengthError should match ErrInvalidLength")
	}
	if err.Error() != "group: length 17: "+ErrInvalidLength.Error() {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	wrapped := fmt.Errorf("decrypting: %w", err)
	var le *LengthError
	if !As(wrapped, &le) {
		t.Fatal("As should find LengthError in chain")
	}
	if le.Len != 17 || le.Op != "group" {
		t.Errorf("LengthError fields = %+v", le)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("key", "must be 32 hex characters")
	want := "validation: key: must be 32 hex characters"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := Wrap(ErrUnknownMode, "parsing flags")
	if !Is(err, ErrUnknownMode) {
		t.Error("Wrap should preserve the chain")
	}
	if err.Error() != "parsing flags: "+ErrUnknownMode.Error() {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		malformed bool
		rand      bool
	}{
		{"length", NewLengthError("cbc decrypt", 3), true, false},
		{"short", Wrap(ErrShortCiphertext, "ctr decrypt"), true, false},
		{"rand", NewCryptoError("rand", ErrRandFailure), false, true},
		{"other", ErrUnknownCipher, false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMalformed(tt.err); got != tt.malformed {
				t.Errorf("IsMalformed = %v, want %v", got, tt.malformed)
			}
			if got := IsRandFailure(tt.err); got != tt.rand {
				t.Errorf("IsRandFailure = %v, want %v", got, tt.rand)
			}
		})
	}
}

package crypto

import (
	"bytes"
	"io"
	"testing"

	"blockmodes/internal/block"
	"blockmodes/internal/errors"
)

// testParams keep Argon2id fast in tests.
var testParams = KDFParams{Passes: 1, Memory: 64, Threads: 1}

func TestFill(t *testing.T) {
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	b := make([]byte, 8)
	if err := Fill(src, b); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("Fill read %v", b)
	}
}

func TestFillShortRead(t *testing.T) {
	err := Fill(bytes.NewReader([]byte{1, 2}), make([]byte, 8))
	if !errors.Is(err, errors.ErrRandFailure) {
		t.Fatalf("Fill err = %v, want ErrRandFailure", err)
	}
	var ce *errors.CryptoError
	if !errors.As(err, &ce) || ce.Op != "rand" {
		t.Errorf("Fill should return a rand CryptoError, got %v", err)
	}
}

func TestFillRejectsZeros(t *testing.T) {
	zeros := bytes.NewReader(make([]byte, 16))
	if err := Fill(zeros, make([]byte, 16)); !errors.IsRandFailure(err) {
		t.Errorf("Fill(all zero) err = %v, want ErrRandFailure", err)
	}
}

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	b, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	if len(a) != 32 || bytes.Equal(a, b) {
		t.Error("RandomBytes should return distinct 32-byte values")
	}

	if _, err := RandomBytes(0); err == nil {
		t.Error("RandomBytes(0) should fail")
	}
}

func TestRandomKeyUsesReader(t *testing.T) {
	orig := Reader
	defer func() { Reader = orig }()

	Reader = bytes.NewReader(bytes.Repeat([]byte{0x11}, block.KeySize))
	k, err := RandomKey()
	if err != nil {
		t.Fatalf("RandomKey: %v", err)
	}
	if k != (block.Key{0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11}) {
		t.Errorf("RandomKey = %v", k)
	}

	Reader = io.LimitReader(Reader, 0)
	if _, err := RandomKey(); !errors.IsRandFailure(err) {
		t.Errorf("RandomKey on exhausted reader err = %v", err)
	}
}

func TestDeriveKey(t *testing.T) {
	salt := make([]byte, SaltSize)
	for i := range salt {
		salt[i] = byte(i)
	}

	k1, err := DeriveKey([]byte("correct horse"), salt, testParams)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k2, _ := DeriveKey([]byte("correct horse"), salt, testParams)
	if k1 != k2 {
		t.Error("Same inputs should produce same key")
	}

	k3, _ := DeriveKey([]byte("battery staple"), salt, testParams)
	if k1 == k3 {
		t.Error("Different passphrases should produce different keys")
	}

	salt[0] ^= 1
	k4, _ := DeriveKey([]byte("correct horse"), salt, testParams)
	if k1 == k4 {
		t.Error("Different salts should produce different keys")
	}
}

func TestDeriveKeyRejectsBadInput(t *testing.T) {
	salt := make([]byte, SaltSize)
	tests := []struct {
		name string
		pass []byte
		salt []byte
		p    KDFParams
	}{
		{"empty passphrase", nil, salt, testParams},
		{"short salt", []byte("pw"), salt[:8], testParams},
		{"zero passes", []byte("pw"), salt, KDFParams{Memory: 64, Threads: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveKey(tt.pass, tt.salt, tt.p)
			if !errors.Is(err, errors.ErrKeyDerivation) {
				t.Errorf("err = %v, want ErrKeyDerivation", err)
			}
		})
	}
}

func TestSecureZero(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	SecureZero(data)
	for i, b := range data {
		if b != 0 {
			t.Errorf("SecureZero: byte %d = %d; want 0", i, b)
		}
	}

	// Should not panic on empty slices
	SecureZero(nil)
	SecureZero([]byte{})
}

func TestSecureZeroMultiple(t *testing.T) {
	s1 := []byte{1, 2, 3}
	s2 := []byte{4, 5, 6, 7}
	SecureZeroMultiple(s1, nil, s2)

	if !bytes.Equal(s1, make([]byte, 3)) || !bytes.Equal(s2, make([]byte, 4)) {
		t.Error("SecureZeroMultiple left data behind")
	}
}

func TestZeroBlocksAndKey(t *testing.T) {
	blocks := []block.Block{{1, 2, 3}, {4, 5, 6}}
	ZeroBlocks(blocks)
	for i, b := range blocks {
		if b != (block.Block{}) {
			t.Errorf("block %d not zeroed", i)
		}
	}

	k := block.Key{9, 9, 9}
	ZeroKey(&k)
	if k != (block.Key{}) {
		t.Error("ZeroKey left data behind")
	}
	ZeroKey(nil)
}

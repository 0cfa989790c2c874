// Package modes implements the ECB, CBC and CTR modes of operation over a
// 16-byte block.Transform.
//
// Every driver pads with encoding.Pad, groups into blocks, runs its
// per-block chaining or counter logic and ungroups. Decryption reverses the
// steps and ends in encoding.Unpad. None of the modes authenticate: a
// tampered ciphertext always decrypts to something.
//
// WARNING: ECB is not secure. Identical plaintext blocks encrypt to identical
// ciphertext blocks under the same key. It exists to show why.
package modes

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"blockmodes/internal/block"
	"blockmodes/internal/crypto"
	"blockmodes/internal/encoding"
	"blockmodes/internal/errors"
	"blockmodes/internal/log"
)

// Mode identifies a mode of operation.
type Mode int

const (
	ModeECB Mode = iota + 1
	ModeCBC
	ModeCTR
)

func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ecb"
	case ModeCBC:
		return "cbc"
	case ModeCTR:
		return "ctr"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps "ecb", "cbc" or "ctr" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ecb":
		return ModeECB, nil
	case "cbc":
		return ModeCBC, nil
	case "ctr":
		return ModeCTR, nil
	}
	return 0, fmt.Errorf("%w: %q (want ecb, cbc or ctr)", errors.ErrUnknownMode, s)
}

// Cipher is a mode of operation bound to a block transform.
// Implementations hold no per-call state and are safe for concurrent use.
type Cipher interface {
	Encrypt(plaintext []byte, key block.Key) ([]byte, error)
	Decrypt(ciphertext []byte, key block.Key) ([]byte, error)
	Mode() Mode
}

// New builds the driver for m.
func New(m Mode, t block.Transform, opts ...Option) (Cipher, error) {
	switch m {
	case ModeECB:
		return NewECB(t, opts...), nil
	case ModeCBC:
		return NewCBC(t, opts...), nil
	case ModeCTR:
		return NewCTR(t, opts...), nil
	}
	return nil, fmt.Errorf("%w: %v", errors.ErrUnknownMode, m)
}

// CiphertextLen returns the exact ciphertext length m produces for an
// n-byte plaintext.
func CiphertextLen(m Mode, n int) int {
	padded := encoding.PadLen(n)
	if m == ModeECB {
		return padded
	}
	return padded + block.Size
}

// Option configures a driver.
type Option func(*options)

type options struct {
	rand    io.Reader
	workers int
	logger  log.Logger
}

// WithRand sets the randomness source for IVs and nonces.
// The source must be cryptographically secure outside of tests.
func WithRand(r io.Reader) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithWorkers caps the goroutines used for block-parallel work.
// Values below 1 mean sequential.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger; the package-level logger is used otherwise.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) randSource() io.Reader {
	if o.rand != nil {
		return o.rand
	}
	return crypto.Reader
}

func (o *options) log() log.Logger {
	if o.logger != nil {
		return o.logger
	}
	return log.GetLogger()
}

func orDefault(t block.Transform) block.Transform {
	if t == nil {
		return block.Default()
	}
	return t
}

package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"blockmodes/internal/crypto"
	"blockmodes/internal/encoding"
	"blockmodes/internal/errors"
)

// envelope frames a mode ciphertext for storage:
//
//	[salt(16)] ‖ ciphertext       passphrase keys only
//	RS(16→24) over the above      --reed-solomon
//	hex text of the above         --hex
type envelope struct {
	salted bool
	armor  bool
	hex    bool
}

func (o *cryptOptions) envelope(salted bool) envelope {
	return envelope{salted: salted, armor: o.reedSolomon, hex: o.hexText}
}

// seal frames salt and ciphertext. salt must be nil unless e.salted.
func (e envelope) seal(salt, ciphertext []byte) ([]byte, error) {
	data := make([]byte, 0, len(salt)+len(ciphertext))
	data = append(data, salt...)
	data = append(data, ciphertext...)

	if e.armor {
		rs, err := encoding.NewArmor()
		if err != nil {
			return nil, err
		}
		if data, err = rs.Encode(data); err != nil {
			return nil, err
		}
	}

	if e.hex {
		return []byte(hex.EncodeToString(data) + "\n"), nil
	}
	return data, nil
}

// open undoes seal. A non-nil damage error means the armor found blocks it
// could not repair; salt and ciphertext are still returned in that case.
func (e envelope) open(raw []byte) (salt, ciphertext []byte, damage, err error) {
	data := raw
	if e.hex {
		data, err = hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: not hex: %v", errors.ErrInvalidFormat, err)
		}
	}

	if e.armor {
		rs, err := encoding.NewArmor()
		if err != nil {
			return nil, nil, nil, err
		}
		data, err = rs.Decode(data)
		if errors.Is(err, errors.ErrInvalidLength) {
			return nil, nil, nil, fmt.Errorf("%w: not Reed-Solomon armored: %v", errors.ErrInvalidFormat, err)
		}
		damage = err
	}

	if e.salted {
		if len(data) < crypto.SaltSize {
			return nil, nil, damage, fmt.Errorf("%w: %d bytes is too short to hold the passphrase salt", errors.ErrInvalidFormat, len(data))
		}
		return data[:crypto.SaltSize], data[crypto.SaltSize:], damage, nil
	}
	return nil, data, damage, nil
}

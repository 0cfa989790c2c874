package encoding

import (
	"fmt"

	"blockmodes/internal/block"
	"blockmodes/internal/errors"

	"github.com/Picocrypt/infectious"
)

// Reed-Solomon armor sizes: every 16-byte cipher block becomes 24 bytes,
// which repairs up to 4 corrupted bytes per armored block.
const (
	ArmorDataSize    = block.Size
	ArmorEncodedSize = 24
)

// Armor holds a pre-initialized Reed-Solomon codec for ciphertext armoring.
// It is safe for concurrent use.
type Armor struct {
	rs *infectious.FEC
}

// NewArmor initializes the RS(16→24) codec.
func NewArmor() (*Armor, error) {
	rs, err := infectious.NewFEC(ArmorDataSize, ArmorEncodedSize)
	if err != nil {
		return nil, fmt.Errorf("initializing Reed-Solomon codec: %w", err)
	}
	return &Armor{rs: rs}, nil
}

// ArmoredLen returns the armored length of an n-byte block-aligned buffer.
func ArmoredLen(n int) int {
	return n / ArmorDataSize * ArmorEncodedSize
}

// Encode armors block-aligned data.
func (a *Armor) Encode(data []byte) ([]byte, error) {
	if len(data)%ArmorDataSize != 0 {
		return nil, errors.NewLengthError("rs encode", len(data))
	}
	out := make([]byte, 0, ArmoredLen(len(data)))
	for i := 0; i < len(data); i += ArmorDataSize {
		out = append(out, encodeShares(a.rs, data[i:i+ArmorDataSize])...)
	}
	return out, nil
}

// Decode strips and applies the armor, repairing what it can.
//
// On an unrecoverable block the systematic data bytes are kept as-is and
// decoding continues, so the caller still receives a full-length buffer
// alongside an error wrapping ErrRSDecode.
func (a *Armor) Decode(data []byte) ([]byte, error) {
	if len(data)%ArmorEncodedSize != 0 {
		return nil, errors.NewLengthError("rs decode", len(data))
	}
	out := make([]byte, 0, len(data)/ArmorEncodedSize*ArmorDataSize)
	var firstErr error
	for i := 0; i < len(data); i += ArmorEncodedSize {
		res, err := decodeShares(a.rs, data[i:i+ArmorEncodedSize])
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%w: block %d: %v", errors.ErrRSDecode, i/ArmorEncodedSize, err)
		}
		out = append(out, res...)
	}
	return out, firstErr
}

// encodeShares applies Reed-Solomon encoding to one codec-sized chunk.
// Returns encoded data with parity bytes appended (length = rs.Total()).
func encodeShares(rs *infectious.FEC, data []byte) []byte {
	res := make([]byte, rs.Total())
	if err := rs.Encode(data, func(s infectious.Share) {
		res[s.Number] = s.Data[0]
	}); err != nil {
		// Input length always equals rs.Required() here
		panic("rs.Encode failed: " + err.Error())
	}
	return res
}

// decodeShares repairs one encoded chunk and returns its data bytes.
func decodeShares(rs *infectious.FEC, data []byte) ([]byte, error) {
	tmp := make([]infectious.Share, rs.Total())
	for i := range rs.Total() {
		tmp[i].Number = i
		tmp[i].Data = []byte{data[i]}
	}
	res, err := rs.Decode(nil, tmp)
	if err != nil {
		// Systematic code: the first Required() bytes are the original data
		kept := make([]byte, rs.Required())
		copy(kept, data[:rs.Required()])
		return kept, err
	}
	return res, nil
}

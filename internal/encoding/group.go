package encoding

import (
	"blockmodes/internal/block"
	"blockmodes/internal/errors"
)

// Group splits data into consecutive blocks, preserving order.
// len(data) must be a multiple of block.Size; pad first when it is not.
func Group(data []byte) ([]block.Block, error) {
	if len(data)%block.Size != 0 {
		return nil, errors.NewLengthError("group", len(data))
	}
	blocks := make([]block.Block, len(data)/block.Size)
	for i := range blocks {
		copy(blocks[i][:], data[i*block.Size:])
	}
	return blocks, nil
}

// Ungroup concatenates blocks in order.
func Ungroup(blocks []block.Block) []byte {
	data := make([]byte, 0, len(blocks)*block.Size)
	for i := range blocks {
		data = append(data, blocks[i][:]...)
	}
	return data
}

package modes

import "blockmodes/internal/block"

func xorBlock(a, b block.Block) block.Block {
	var out block.Block
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

package modes

import (
	"sync"
	"testing"
)

func TestParallelBlocksCoversEveryIndex(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"empty", 0, 4},
		{"small sequential", 10, 8},
		{"one worker", 5 * minBlocksPerWorker, 1},
		{"zero workers", 3 * minBlocksPerWorker, 0},
		{"even split", 4 * minBlocksPerWorker, 4},
		{"ragged split", 4*minBlocksPerWorker + 7, 3},
		{"more workers than chunks", 2 * minBlocksPerWorker, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]int, tt.n)
			var mu sync.Mutex
			calls := 0

			parallelBlocks(tt.n, tt.workers, func(lo, hi int) {
				mu.Lock()
				calls++
				mu.Unlock()
				for i := lo; i < hi; i++ {
					hits[i]++
				}
			})

			for i, h := range hits {
				if h != 1 {
					t.Fatalf("index %d visited %d times", i, h)
				}
			}
			if tt.n == 0 && calls != 0 {
				t.Error("fn should not run for n == 0")
			}
			if limit := max(1, min(tt.workers, tt.n/minBlocksPerWorker)); tt.n > 0 && calls > limit {
				t.Errorf("fn ran %d times, want at most %d", calls, limit)
			}
		})
	}
}

func TestXorBlock(t *testing.T) {
	a := toBlock([]byte{0xFF, 0x0F, 0x00, 0xAA})
	b := toBlock([]byte{0x0F, 0x0F, 0x55, 0xAA})
	got := xorBlock(a, b)
	want := toBlock([]byte{0xF0, 0x00, 0x55, 0x00})
	if got != want {
		t.Errorf("xorBlock = %x, want %x", got, want)
	}
	if xorBlock(got, b) != a {
		t.Error("xor is not its own inverse")
	}
}

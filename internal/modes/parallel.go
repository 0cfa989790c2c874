package modes

import "sync"

// minBlocksPerWorker keeps goroutine start-up from dominating short inputs.
const minBlocksPerWorker = 256

// parallelBlocks calls fn over contiguous sub-ranges of [0, n), fanning out
// to at most workers goroutines. fn must only touch indices in its range;
// results land by index, so output order never depends on scheduling.
func parallelBlocks(n, workers int, fn func(lo, hi int)) {
	if n == 0 {
		return
	}
	workers = min(workers, n/minBlocksPerWorker)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(lo, hi)
		}()
	}
	wg.Wait()
}

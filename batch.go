package swifft

import (
	"runtime"
	"sync"
)

// runBatched invokes fn(i) for every i in [0, n), in block-index order when
// run sequentially, or fanned out across worker goroutines — with no
// ordering guarantee — once n exceeds opts.BlocksParallelizationThreshold.
// Correctness never depends on which path runs: every block is independent.
func runBatched(n int, opts Options, fn func(i int)) {
	threshold := opts.BlocksParallelizationThreshold
	if threshold <= 0 {
		threshold = DefaultBlocksParallelizationThreshold
	}

	if opts.DisableParallel || n <= threshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	work := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)
	wg.Wait()
}

// ComputeMultiple is Compute applied independently to nblocks blocks.
// Observationally equivalent to nblocks sequential calls to Compute, in
// block-index order or otherwise.
func ComputeMultiple(inputs []InputBlock, outputs []Hash, opts Options) {
	n := minLen(len(inputs), len(outputs))
	runBatched(n, opts, func(i int) {
		Compute(&inputs[i], &outputs[i])
	})
}

// ComputeSignedMultiple is ComputeSigned applied independently to nblocks
// blocks.
func ComputeSignedMultiple(inputs []InputBlock, signs []SignBlock, outputs []Hash, opts Options) {
	n := minLen(len(inputs), len(signs), len(outputs))
	runBatched(n, opts, func(i int) {
		ComputeSigned(&inputs[i], &signs[i], &outputs[i])
	})
}

func minLen(ns ...int) int {
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return m
}

// SetMultiple, AddMultiple, SubMultiple, and MulMultiple apply the
// corresponding single-block algebra op independently across nblocks pairs
// of hash blocks.

func SetMultiple(outs []Hash, ins []Hash, opts Options) {
	n := minLen(len(outs), len(ins))
	runBatched(n, opts, func(i int) { Set(&outs[i], &ins[i]) })
}

func AddMultiple(outs []Hash, ins []Hash, opts Options) {
	n := minLen(len(outs), len(ins))
	runBatched(n, opts, func(i int) { Add(&outs[i], &ins[i]) })
}

func SubMultiple(outs []Hash, ins []Hash, opts Options) {
	n := minLen(len(outs), len(ins))
	runBatched(n, opts, func(i int) { Sub(&outs[i], &ins[i]) })
}

func MulMultiple(outs []Hash, ins []Hash, opts Options) {
	n := minLen(len(outs), len(ins))
	runBatched(n, opts, func(i int) { Mul(&outs[i], &ins[i]) })
}

// ConstSetMultiple, ConstAddMultiple, ConstSubMultiple, and ConstMulMultiple
// apply the corresponding constant-operand algebra op independently across
// nblocks hash blocks, all against the same constant c.

func ConstSetMultiple(outs []Hash, c int16, opts Options) {
	runBatched(len(outs), opts, func(i int) { ConstSet(&outs[i], c) })
}

func ConstAddMultiple(outs []Hash, c int16, opts Options) {
	runBatched(len(outs), opts, func(i int) { ConstAdd(&outs[i], c) })
}

func ConstSubMultiple(outs []Hash, c int16, opts Options) {
	runBatched(len(outs), opts, func(i int) { ConstSub(&outs[i], c) })
}

func ConstMulMultiple(outs []Hash, c int16, opts Options) {
	runBatched(len(outs), opts, func(i int) { ConstMul(&outs[i], c) })
}

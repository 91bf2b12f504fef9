package tuning

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"
)

// ErrInvalidBlockSize is returned by SetBlockSize when size falls outside
// the supported [16, 4096] range (spec.md §7).
var ErrInvalidBlockSize = errors.New("tuning: block size out of [16, 4096]")

const (
	minBlockSize = 16
	maxBlockSize = 4096

	defaultBlockSize = 256
)

var (
	blockSize         atomic.Uint32
	threadCount       atomic.Uint32
	minWorkPerThread  atomic.Uint64
	parallelMemorySet atomic.Bool
)

func init() {
	Reset()
}

// defaultThreadCount picks a starting worker count from the detected cache
// topology the way production Go code in the pack (go-musicfox, bsc-erigon,
// sneller, lattigo — see DESIGN.md) senses the host CPU via
// github.com/klauspost/cpuid/v2 instead of hardcoding a constant. A larger
// L2 cache can usefully feed more concurrent partial-table workers before
// memory bandwidth saturates; this is a starting point only, always
// overridable via SetThreadCount.
func defaultThreadCount() uint32 {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	if cpuid.CPU.Cache.L2 > 0 && cpuid.CPU.Cache.L2 < 256*1024 && n > 4 {
		// Small L2 per core: favor fewer, larger partial tables so each
		// worker's scratch table has a chance of staying cache-resident.
		n = n / 2
		if n < 1 {
			n = 1
		}
	}
	return uint32(n)
}

// Reset restores every tuning flag to its default value: block size 256,
// thread count from defaultThreadCount, minimum work per thread 65536
// term-pairs, and parallel memory initialisation enabled.
func Reset() {
	blockSize.Store(defaultBlockSize)
	threadCount.Store(defaultThreadCount())
	minWorkPerThread.Store(1 << 16)
	parallelMemorySet.Store(true)
}

// BlockSize returns the current multiplication block size (spec.md §4.5.3).
func BlockSize() int {
	return int(blockSize.Load())
}

// SetBlockSize sets the multiplication block size. size must be within
// [16, 4096].
func SetBlockSize(size int) error {
	if size < minBlockSize || size > maxBlockSize {
		return fmt.Errorf("%w: got %d", ErrInvalidBlockSize, size)
	}
	blockSize.Store(uint32(size))
	return nil
}

// ThreadCount returns the number of worker threads the multiplier's
// parallel accumulation stage will use.
func ThreadCount() int {
	return int(threadCount.Load())
}

// SetThreadCount sets the worker thread count. Values below 1 are clamped
// to 1.
func SetThreadCount(n int) {
	if n < 1 {
		n = 1
	}
	threadCount.Store(uint32(n))
}

// MinWorkPerThread returns the minimum number of term-pair multiplications
// (|A|*|B|) a parallel multiplication must represent before the work is
// actually split across more than one thread.
func MinWorkPerThread() int64 {
	return int64(minWorkPerThread.Load())
}

// SetMinWorkPerThread sets the minimum-work-per-thread threshold.
func SetMinWorkPerThread(n int64) {
	if n < 0 {
		n = 0
	}
	minWorkPerThread.Store(uint64(n))
}

// ParallelMemorySet reports whether large fresh allocations in the
// multiplier's hot path (partial-table bucket arrays) should be zeroed by
// multiple threads in parallel.
func ParallelMemorySet() bool {
	return parallelMemorySet.Load()
}

// SetParallelMemorySet sets the parallel-memory-initialisation flag.
func SetParallelMemorySet(flag bool) {
	parallelMemorySet.Store(flag)
}

// Package tuning holds the process-wide performance knobs the multiplier
// consults: the multiplication block size, the worker thread count, a
// minimum-work-per-thread threshold below which multiplication stays
// single-threaded, and a parallel-memory-initialisation flag. All of it is
// safe to read and write concurrently, following spec.md §5 and §6 and
// grounded directly on original_source/src/tuning.hpp's atomic pair.
package tuning

// Package multiplier implements the base series multiplier of spec.md
// §4.5: output-size estimation by statistical sampling, cache-blocked
// term-by-term multiplication, and parallel accumulation into disjoint
// partial term tables that are merged deterministically afterwards.
//
// Mul operates on term.Table rather than series.Series so that series can
// call into this package without a cyclic import; package series builds
// the truncation Option from its own process-wide policy and wraps the
// result back into a series.Series.
package multiplier

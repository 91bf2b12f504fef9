// Package kronecker implements the Kronecker-substitution codec used by the
// packed monomial representation: a bijection between n-vectors of signed
// exponents confined to a per-arity box [L, U] and a contiguous range of
// int64, encoded as a mixed-radix positional sum.
//
// For every arity the codec publishes the bit width b, the per-component
// bounds L/U, and the code range [hMin, hMax] such that every vector with
// components inside the box round-trips exactly through Encode/Decode. The
// table is built once, lazily, the first time it is needed.
package kronecker

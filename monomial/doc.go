// Package monomial implements the two interchangeable monomial
// representations of spec.md §3/§4.2: Dense, an unpacked vector of signed
// exponents, and Packed, a single int64 Kronecker code (see package
// kronecker). Both implement the shared Key interface the term table and
// the multiplier are generic over; which one a series uses is a
// construction-time choice, never a runtime dynamic dispatch (spec.md §9).
package monomial

// Package symbol implements the ordered symbol set shared by every term of
// a series.
//
// A Set fixes the arity of a series and the positional meaning of exponent
// vectors: exponent i of every monomial in a series always refers to the
// i-th symbol of that series' Set. Sets are immutable once built; combining
// two series with different symbol sets goes through Merge, which computes
// the ordered union together with the per-operand index maps needed to lift
// monomials from either input set into the merged one.
package symbol

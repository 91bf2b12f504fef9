// Package s11n implements the persisted layout spec.md §6 names as a
// boundary without mandating a framing: symbol set, term count, then for
// each term a (monomial, coefficient) pair. It offers a
// WriteTo/ReadFrom/Marshal/Unmarshal quartet, with codecs pluggable per
// monomial and coefficient
// representation so the same framing serves monomial.Packed (a binary
// int64 code) and monomial.Dense (a portable exponent vector) alike.
package s11n

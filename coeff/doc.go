// Package coeff defines the numeric coefficient contracts the rest of the
// module is generic over (spec.md §4.6), and supplies two concrete
// implementations adapting math/big's arbitrary-precision integer and
// rational types to those contracts.
//
// The core does not implement multiprecision arithmetic itself — spec.md §1
// explicitly scopes mp_integer/mp_rational out as opaque external
// collaborators — so BigInt and BigRat here are thin adapters, not
// reimplementations.
package coeff

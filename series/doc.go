// Package series implements the polynomial container of spec.md §3/§4.4: a
// symbol.Set paired with a term.Table. Addition and subtraction follow the
// lift-then-merge dispatch of spec.md §4.4 directly; multiplication
// delegates to package multiplier.
package series

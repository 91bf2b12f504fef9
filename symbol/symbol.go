package symbol

import (
	"slices"
	"strings"
)

// Set is an ordered sequence of distinct variable names. The zero value is
// the empty set. Sets are treated as value types: callers must not mutate
// the slice backing a Set obtained from another package.
type Set struct {
	names []string
}

// New builds a Set from names, sorting and de-duplicating them. Names are
// copied, so the caller's slice may be reused afterwards.
func New(names ...string) Set {
	cp := append([]string(nil), names...)
	slices.Sort(cp)
	cp = slices.Compact(cp)
	return Set{names: cp}
}

// Size returns the arity of the set, i.e. the number of symbols it holds.
func (s Set) Size() int {
	return len(s.names)
}

// Name returns the name of the symbol at position i.
func (s Set) Name(i int) string {
	return s.names[i]
}

// Index returns the position of name within the set, or (-1, false) if name
// is not a member.
func (s Set) Index(name string) (int, bool) {
	i, ok := slices.BinarySearch(s.names, name)
	if !ok {
		return -1, false
	}
	return i, true
}

// Equal reports whether two sets contain the same names in the same order.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.names, other.names)
}

// Compare orders two sets lexicographically by their member names.
func (s Set) Compare(other Set) int {
	return slices.Compare(s.names, other.names)
}

// String renders the set as a comma-separated, parenthesised list, mostly
// useful for tests and diagnostics.
func (s Set) String() string {
	return "(" + strings.Join(s.names, ", ") + ")"
}

// Names returns a defensive copy of the set's member names in order.
func (s Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Merge computes the ordered union of a and b. It also returns, for each
// operand, the slice posA (resp. posB) such that a symbol at position i in
// the operand set sits at position posA[i] (resp. posB[i]) in the merged
// set. These are the index maps monomial.Key.MergeInto consumes to lift an
// exponent vector from an operand's set into the merged one, inserting zero
// exponents at newly introduced positions.
func Merge(a, b Set) (merged Set, posA, posB []int) {
	posA = make([]int, len(a.names))
	posB = make([]int, len(b.names))

	out := make([]string, 0, len(a.names)+len(b.names))
	i, j := 0, 0
	for i < len(a.names) && j < len(b.names) {
		switch {
		case a.names[i] < b.names[j]:
			posA[i] = len(out)
			out = append(out, a.names[i])
			i++
		case a.names[i] > b.names[j]:
			posB[j] = len(out)
			out = append(out, b.names[j])
			j++
		default:
			posA[i] = len(out)
			posB[j] = len(out)
			out = append(out, a.names[i])
			i++
			j++
		}
	}
	for ; i < len(a.names); i++ {
		posA[i] = len(out)
		out = append(out, a.names[i])
	}
	for ; j < len(b.names); j++ {
		posB[j] = len(out)
		out = append(out, b.names[j])
	}
	return Set{names: out}, posA, posB
}

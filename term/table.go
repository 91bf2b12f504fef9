package term

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/bluescarni/piranha-go/monomial"
	"github.com/bluescarni/piranha-go/tuning"
)

// ErrTableFull is returned when an insertion would grow the table beyond the
// maximum addressable size (spec.md §4.3: "exceeding the maximum
// addressable size is a hard error").
var ErrTableFull = errors.New("term: maximum addressable table size exceeded")

// ErrInvalidLoadFactor is returned by SetMaxLoadFactor for factors outside
// (0, 1] (spec.md §4.3: "max_load_factor is configurable... ≤ 1").
var ErrInvalidLoadFactor = errors.New("term: max load factor must be in (0, 1]")

const (
	minBucketCount      = 8
	defaultMaxLoadFactor = 1.0

	// parallelFillThreshold is the smallest bucket vector IncreaseSize will
	// bother splitting across goroutines for; below it the per-goroutine
	// overhead outweighs the work of writing a few thousand int32s.
	parallelFillThreshold = 1 << 16
)

// fillEmpty initializes a freshly allocated bucket vector to "empty" (-1),
// honouring tuning.ParallelMemorySet (spec.md §5): when set, and the
// vector is large enough and more than one worker is configured, the fill
// is split across goroutines the same way the multiplier splits its own
// hot-path work across tuning.ThreadCount() workers.
func fillEmpty(buckets []int32) {
	n := len(buckets)
	threads := tuning.ThreadCount()
	if !tuning.ParallelMemorySet() || threads < 2 || n < parallelFillThreshold {
		for i := range buckets {
			buckets[i] = -1
		}
		return
	}

	chunk := (n + threads - 1) / threads
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				buckets[i] = -1
			}
		}(start, end)
	}
	wg.Wait()
}

type entry[K monomial.Key, C any] struct {
	key  K
	coef C
	next int32
}

// Table is an open-addressed map from monomial keys to coefficients,
// implemented as a vector of singly-linked bucket chains (spec.md §4.3). The
// zero value is not ready for use; construct with New.
type Table[K monomial.Key, C any] struct {
	buckets       []int32
	entries       []entry[K, C]
	size          int
	maxLoadFactor float64
}

// New returns an empty table with zero buckets; the first insertion
// allocates the initial bucket vector.
func New[K monomial.Key, C any]() *Table[K, C] {
	return &Table[K, C]{maxLoadFactor: defaultMaxLoadFactor}
}

func (t *Table[K, C]) Size() int          { return t.size }
func (t *Table[K, C]) BucketCount() int   { return len(t.buckets) }
func (t *Table[K, C]) EntryCount() int    { return len(t.entries) }
func (t *Table[K, C]) MaxLoadFactor() float64 { return t.maxLoadFactor }

// LoadFactor returns size/bucket_count, or 0 for an empty table.
func (t *Table[K, C]) LoadFactor() float64 {
	if len(t.buckets) == 0 {
		return 0
	}
	return float64(t.size) / float64(len(t.buckets))
}

func (t *Table[K, C]) SetMaxLoadFactor(f float64) error {
	if f <= 0 || f > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, f)
	}
	t.maxLoadFactor = f
	return nil
}

// Bucket returns the bucket index for a hash, given the table's current
// bucket count. Panics if the table has no buckets yet; callers on the hot
// path are expected to have called IncreaseSize at least once.
func (t *Table[K, C]) Bucket(h uint64) int {
	if len(t.buckets) == 0 {
		panic("term: Bucket called on a table with no buckets")
	}
	return int(h & uint64(len(t.buckets)-1))
}

// Find looks for key within the bucket chain starting at bucketIdx,
// returning the entry index and true on a hit.
func (t *Table[K, C]) Find(bucketIdx int, key K) (int, bool) {
	for i := t.buckets[bucketIdx]; i != -1; i = t.entries[i].next {
		if t.entries[i].key.Equal(key) {
			return int(i), true
		}
	}
	return -1, false
}

// UniqueInsert appends a new entry to bucketIdx's chain without checking
// whether key is already present and without updating size or rehashing;
// it is the O(1) amortised primitive the multiplier's inner loop uses
// directly (spec.md §4.3). The caller is responsible for having ensured
// bucket_count > 0 and for calling UpdateSize afterwards.
func (t *Table[K, C]) UniqueInsert(bucketIdx int, key K, coef C) int {
	idx := int32(len(t.entries))
	t.entries = append(t.entries, entry[K, C]{key: key, coef: coef, next: t.buckets[bucketIdx]})
	t.buckets[bucketIdx] = idx
	return int(idx)
}

// UpdateSize directly sets the table's reported size, for callers that
// populate entries via UniqueInsert and reconcile the counter themselves
// (the multiplier's accumulation loop after every insertion, series' table
// copy once at the end).
func (t *Table[K, C]) UpdateSize(n int) { t.size = n }

// IncreaseSize at minimum doubles the bucket count (or allocates the
// initial minBucketCount buckets if the table currently has none) and
// rehashes every entry. Rehashing walks entries in index order, which is
// itself fixed by insertion history, so the result is deterministic given
// the insertion sequence (spec.md §4.3).
func (t *Table[K, C]) IncreaseSize() {
	newCount := len(t.buckets) * 2
	if newCount == 0 {
		newCount = minBucketCount
	}
	newBuckets := make([]int32, newCount)
	fillEmpty(newBuckets)
	mask := uint64(newCount - 1)
	for i := range t.entries {
		b := int(t.entries[i].key.Hash() & mask)
		t.entries[i].next = newBuckets[b]
		newBuckets[b] = int32(i)
	}
	t.buckets = newBuckets
}

// EnsureBucket grows the table if it has no buckets yet or if one more
// entry would exceed max_load_factor, then returns the bucket index for
// key under the (possibly new) bucket count. Callers that need the
// UniqueInsert/UpdateSize primitives directly (the multiplier's hot path,
// series' table-copy helpers) call this first to get a bucket index that
// is guaranteed valid for an immediately following UniqueInsert.
func (t *Table[K, C]) EnsureBucket(key K) int {
	if len(t.buckets) == 0 {
		t.IncreaseSize()
	}
	h := key.Hash()
	b := t.Bucket(h)
	if float64(t.size+1)/float64(len(t.buckets)) > t.maxLoadFactor {
		t.IncreaseSize()
		b = t.Bucket(h)
	}
	return b
}

// Reserve grows the bucket vector, if necessary, so that n entries can be
// inserted without crossing max_load_factor. Used by the multiplier to
// pre-size each worker's private partial table from the output-size
// estimate (spec.md §4.5.4).
func (t *Table[K, C]) Reserve(n int) {
	if n <= 0 {
		return
	}
	needed := int(math.Ceil(float64(n) / t.maxLoadFactor))
	for len(t.buckets) < needed {
		t.IncreaseSize()
	}
}

// Insert is the safe wrapper around the exposed primitives: it grows the
// table on an empty bucket vector or on exceeding max_load_factor, and
// refuses to insert a duplicate key. Returns false without modifying the
// table if key is already present.
func (t *Table[K, C]) Insert(key K, coef C) (bool, error) {
	if len(t.entries) >= math.MaxInt32 {
		return false, ErrTableFull
	}
	if len(t.buckets) != 0 {
		if _, ok := t.Find(t.Bucket(key.Hash()), key); ok {
			return false, nil
		}
	}
	b := t.EnsureBucket(key)
	t.UniqueInsert(b, key, coef)
	t.UpdateSize(t.size + 1)
	return true, nil
}

// Get returns the coefficient stored under key, if any.
func (t *Table[K, C]) Get(key K) (C, bool) {
	var zero C
	if len(t.buckets) == 0 {
		return zero, false
	}
	idx, ok := t.Find(t.Bucket(key.Hash()), key)
	if !ok {
		return zero, false
	}
	return t.entries[idx].coef, true
}

// SetCoeff overwrites the coefficient stored under an existing key,
// returning false if key is not present.
func (t *Table[K, C]) SetCoeff(key K, coef C) bool {
	if len(t.buckets) == 0 {
		return false
	}
	idx, ok := t.Find(t.Bucket(key.Hash()), key)
	if !ok {
		return false
	}
	t.entries[idx].coef = coef
	return true
}

// Delete removes key from the table, compacting the entries slice by
// swapping the removed slot with the current last entry and relinking
// whichever chain referenced that last entry, so entries never carries
// tombstones.
func (t *Table[K, C]) Delete(key K) bool {
	if len(t.buckets) == 0 {
		return false
	}
	b := t.Bucket(key.Hash())
	idx, ok := t.Find(b, key)
	if !ok {
		return false
	}
	idx32 := int32(idx)
	t.unlinkFromChain(b, idx32)

	last := int32(len(t.entries) - 1)
	if idx32 != last {
		moved := t.entries[last].key
		t.entries[idx32] = t.entries[last]
		t.relink(last, idx32, moved)
	}
	t.entries = t.entries[:last]
	t.size--
	return true
}

func (t *Table[K, C]) unlinkFromChain(bucketIdx int, idx int32) {
	prev := int32(-1)
	cur := t.buckets[bucketIdx]
	for cur != -1 {
		if cur == idx {
			if prev == -1 {
				t.buckets[bucketIdx] = t.entries[cur].next
			} else {
				t.entries[prev].next = t.entries[cur].next
			}
			return
		}
		prev = cur
		cur = t.entries[cur].next
	}
}

// relink finds whichever link (a bucket head or a chain's next pointer)
// pointed at oldIdx for key's chain and repoints it to newIdx; used after
// moving the last entry into a freed slot during Delete.
func (t *Table[K, C]) relink(oldIdx, newIdx int32, key K) {
	b := t.Bucket(key.Hash())
	if t.buckets[b] == oldIdx {
		t.buckets[b] = newIdx
		return
	}
	for cur := t.buckets[b]; cur != -1; cur = t.entries[cur].next {
		if t.entries[cur].next == oldIdx {
			t.entries[cur].next = newIdx
			return
		}
	}
}

// KeyAt and CoeffAt give positional access to the entries slice, used by
// callers that work by entry index (the multiplier's accumulation loop and
// its rational rescale pass).
func (t *Table[K, C]) KeyAt(i int) K     { return t.entries[i].key }
func (t *Table[K, C]) CoeffAt(i int) C   { return t.entries[i].coef }
func (t *Table[K, C]) SetCoeffAt(i int, c C) { t.entries[i].coef = c }

// Range calls fn for every entry in index order, stopping early if fn
// returns false. Iteration order is unspecified but stable between
// mutating operations (spec.md §4.3), since it is simply entries order.
func (t *Table[K, C]) Range(fn func(key K, coef C) bool) {
	for i := range t.entries {
		if !fn(t.entries[i].key, t.entries[i].coef) {
			return
		}
	}
}

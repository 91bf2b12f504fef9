// Package term implements the open-addressed term table of spec.md §4.3: a
// hash map from monomial.Key to a coefficient, built as a vector of bucket
// chains rather than a public safe map, with the low-level primitives
// (Bucket, Find, UniqueInsert, UpdateSize, IncreaseSize) deliberately
// exposed so the multiplier's hot path can bypass the safe Insert/Delete
// wrappers the way the original implementation's multiplier bypasses its
// container's safe interface (spec.md §9).
package term

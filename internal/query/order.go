package query

import (
	"cmp"
	"slices"
)

// DefaultK is the number of items TopK returns when k is not positive.
const DefaultK = 10

// Direction selects ascending or descending order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// By builds a comparison function from a key extractor.
func By[T any, K cmp.Ordered](key func(T) K, dir Direction) func(a, b T) int {
	return func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if dir == Descending {
			return -c
		}
		return c
	}
}

// Sorted returns a stably sorted copy of items. Items that compare equal keep
// their input order, which for store collections is identity order.
func Sorted[T any](items []T, compare func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compare)
	return out
}

// TopK returns the k items with the largest (Descending) or smallest
// (Ascending) key. Ties keep input order.
func TopK[T any, K cmp.Ordered](items []T, k int, key func(T) K, dir Direction) []T {
	if k <= 0 {
		k = DefaultK
	}
	out := Sorted(items, By(key, dir))
	if len(out) > k {
		out = out[:k]
	}
	return out
}

func sortStrings(s []string) {
	slices.Sort(s)
}

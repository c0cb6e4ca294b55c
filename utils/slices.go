// Package utils implements generic helper functions.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// EqualSlice checks the equality between two slices of comparable elements.
func EqualSlice[V comparable](a, b []V) (v bool) {
	if len(a) != len(b) {
		return false
	}
	v = true
	for i := range a {
		v = v && (a[i] == b[i])
	}
	return
}

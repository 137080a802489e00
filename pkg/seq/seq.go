// Package seq provides small generic algorithms over finite slices:
// predicate-indexed search, consecutive-pair enumeration, keyed min/max
// selection, and a weighted priority queue.
package seq

import "errors"

// ErrEmptyInput is returned by operations that require at least one element.
var ErrEmptyInput = errors.New("seq: empty input")

// IndexFunc returns the index of the first element satisfying pred,
// or -1 if none does.
func IndexFunc[T any](items []T, pred func(T) bool) int {
	for i, v := range items {
		if pred(v) {
			return i
		}
	}
	return -1
}

// Pair holds two consecutive elements of a sequence.
type Pair[T any] struct {
	Prev, Next T
}

// ConsecutivePairs returns the consecutive pairs of items. With closed=false
// a sequence of length m yields m-1 pairs; with closed=true the final pair
// wraps from the last element back to the first, yielding m pairs. Empty and
// singleton inputs yield no pairs in either mode.
func ConsecutivePairs[T any](items []T, closed bool) []Pair[T] {
	if len(items) < 2 {
		return nil
	}
	n := len(items) - 1
	if closed {
		n = len(items)
	}
	pairs := make([]Pair[T], n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair[T]{Prev: items[i], Next: items[(i+1)%len(items)]}
	}
	return pairs
}

// MinBy returns the index and value of the first element with the smallest
// key. Ties resolve to the earliest occurrence.
func MinBy[T any](items []T, key func(T) float64) (int, T, error) {
	return extremeBy(items, key, func(candidate, best float64) bool { return candidate < best })
}

// MaxBy returns the index and value of the first element with the largest
// key. Ties resolve to the earliest occurrence.
func MaxBy[T any](items []T, key func(T) float64) (int, T, error) {
	return extremeBy(items, key, func(candidate, best float64) bool { return candidate > best })
}

func extremeBy[T any](items []T, key func(T) float64, better func(candidate, best float64) bool) (int, T, error) {
	var zero T
	if len(items) == 0 {
		return -1, zero, ErrEmptyInput
	}
	bestIdx := 0
	bestKey := key(items[0])
	for i := 1; i < len(items); i++ {
		k := key(items[i])
		if better(k, bestKey) {
			bestIdx, bestKey = i, k
		}
	}
	return bestIdx, items[bestIdx], nil
}

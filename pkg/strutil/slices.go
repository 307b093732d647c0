package strutil

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// JoinTo joins at most to items with sep (default ","). When items were
// left out, " + <count>" is appended, e.g. "a,b + 3".
func JoinTo(items []string, to int, sep string) string {
	if sep == "" {
		sep = ","
	}
	shown := Head(items, to)
	joined := strings.Join(shown, sep)
	if rest := len(items) - len(shown); rest > 0 {
		return joined + " + " + strconv.Itoa(rest)
	}
	return joined
}

// Head returns the first n elements of items.
func Head[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return lo.Subset(items, 0, uint(n))
}

// Tail returns the last n elements of items.
func Tail[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return lo.Subset(items, -n, uint(n))
}

// Last returns the final element of items without removing it.
func Last[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return lo.LastOrEmpty(items), true
}

// Random returns a uniformly chosen element, or the zero value for an empty slice.
func Random[T any](items []T) T {
	return lo.Sample(items)
}

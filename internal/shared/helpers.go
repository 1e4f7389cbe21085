// Package shared provides common utility functions used across
// multiple packages in the sceneplan codebase.
package shared

import (
	"math"
	"sort"
	"strings"
)

// SortedKeys returns the keys of m in lexicographic order. Map
// iteration order is not deterministic in Go, and the engine promises
// deterministic error messages, so every map walk goes through this.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Float returns a pointer to v, for optional FieldSpec bounds.
func Float(v float64) *float64 {
	return &v
}

// NearlyEqual compares two floats under a relative tolerance, falling
// back to an absolute tolerance near zero.
func NearlyEqual(a, b, tol float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= tol
	}
	return diff <= tol*scale
}

// JoinKeys renders a key list for error messages.
func JoinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

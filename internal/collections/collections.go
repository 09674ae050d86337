// Package collections holds the sequence, mapping and matrix helpers.
package collections

import (
	"fmt"
	"sort"
	"strings"
)

// Append returns items with extra added at the end. The input slice is not
// modified.
func Append(items []string, extra ...string) []string {
	out := make([]string, 0, len(items)+len(extra))
	out = append(out, items...)
	return append(out, extra...)
}

// SortStrings returns an ascending, byte-wise lexicographic copy of items.
func SortStrings(items []string) []string {
	out := append([]string(nil), items...)
	sort.Strings(out)
	return out
}

// Person is the key-value mapping the tour looks values up in.
type Person map[string]any

// Get returns the value for key, if present.
func (p Person) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Matrix is a nested sequence of integers.
type Matrix [][]int

// At returns m[row][col], or false when either index is out of range.
func (m Matrix) At(row, col int) (int, bool) {
	if row < 0 || row >= len(m) {
		return 0, false
	}
	if col < 0 || col >= len(m[row]) {
		return 0, false
	}
	return m[row][col], true
}

// Center returns the middle element of a square matrix with odd size.
func (m Matrix) Center() (int, bool) {
	mid := len(m) / 2
	return m.At(mid, mid)
}

// Dump renders a slice or string-keyed map as an indented listing:
//
//	Array
//	(
//	    [0] => Blue
//	    [1] => Green
//	)
//
// Map entries are listed in key order.
func Dump(v any) string {
	var b strings.Builder
	b.WriteString("Array\n(\n")
	switch val := v.(type) {
	case []string:
		for i, item := range val {
			fmt.Fprintf(&b, "    [%d] => %s\n", i, item)
		}
	case []int:
		for i, item := range val {
			fmt.Fprintf(&b, "    [%d] => %d\n", i, item)
		}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "    [%s] => %v\n", k, val[k])
		}
	case Person:
		return Dump(map[string]any(val))
	default:
		fmt.Fprintf(&b, "    [0] => %v\n", val)
	}
	b.WriteString(")\n")
	return b.String()
}

// Package funcs holds the small functions the tour calls: a sum, a greeting
// and a recursive factorial.
package funcs

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrOverflow is returned by FactorialChecked when the result does not fit
// in an int64.
var ErrOverflow = errors.New("integer overflow")

// Sum returns a + b.
func Sum(a, b int) int {
	return a + b
}

// Greet returns "Hello, <name>!" with the name trimmed and the first letter
// of each word upper-cased. Existing capitals are kept, so "McDonald" stays
// as written.
func Greet(name string) string {
	// A Caser keeps state between calls; build one per greeting.
	titler := cases.Title(language.English, cases.NoLower)
	return fmt.Sprintf("Hello, %s!", titler.String(strings.TrimSpace(name)))
}

// Factorial computes n! recursively. Any n <= 1 yields 1.
// Results past 20! wrap around following int64 two's-complement arithmetic.
func Factorial(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// FactorialChecked is Factorial with overflow detection.
func FactorialChecked(n int64) (int64, error) {
	if n <= 1 {
		return 1, nil
	}
	prev, err := FactorialChecked(n - 1)
	if err != nil {
		return 0, err
	}
	if prev > math.MaxInt64/n {
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrOverflow)
	}
	return prev * n, nil
}

// Package pattern matches strings against regular expressions.
package pattern

import (
	"fmt"
	"regexp"
)

// Hello matches any text that starts with "Hello".
var Hello = regexp.MustCompile(`^Hello`)

// MatchHello reports whether text starts with "Hello".
func MatchHello(text string) bool {
	return Hello.MatchString(text)
}

// HasPrefix reports whether text starts with the literal prefix, using an
// anchored regular expression. Metacharacters in prefix are escaped.
func HasPrefix(text, prefix string) (bool, error) {
	re, err := regexp.Compile("^" + regexp.QuoteMeta(prefix))
	if err != nil {
		return false, fmt.Errorf("compile prefix %q: %w", prefix, err)
	}
	return re.MatchString(text), nil
}

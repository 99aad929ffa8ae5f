// Package pattern compiles user-supplied match patterns.
//
// All patterns use regular-expression syntax and match case-insensitively.
// Compilation happens once, at pipeline construction time; a malformed
// pattern aborts construction before any input line is read.
package pattern

import (
	"fmt"
	"regexp"
)

// InvalidPatternError reports a pattern that failed to compile.
type InvalidPatternError struct {
	// Pattern is the raw pattern as the user wrote it.
	Pattern string

	// Err is the underlying regexp syntax error.
	Err error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Compiled is a compiled, case-insensitive match pattern.
type Compiled struct {
	raw string
	re  *regexp.Regexp
}

// Compile compiles a raw pattern string.
// The empty pattern is legal and matches at every position.
func Compile(raw string) (*Compiled, error) {
	re, err := regexp.Compile("(?i)" + raw)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: raw, Err: err}
	}
	return &Compiled{raw: raw, re: re}, nil
}

// String returns the raw pattern as the user wrote it.
func (c *Compiled) String() string {
	return c.raw
}

// Match reports whether the pattern matches anywhere in text.
func (c *Compiled) Match(text string) bool {
	return c.re.MatchString(text)
}

// FindAll returns the byte offsets of every non-overlapping match in text,
// as half-open [start, end) pairs in left-to-right order.
func (c *Compiled) FindAll(text string) [][2]int {
	idx := c.re.FindAllStringIndex(text, -1)
	if idx == nil {
		return nil
	}
	spans := make([][2]int, len(idx))
	for i, m := range idx {
		spans[i] = [2]int{m[0], m[1]}
	}
	return spans
}

// ReplaceAll rewrites every non-overlapping match in text using template.
// The template may reference capture groups by number ($1) or name (${name}).
func (c *Compiled) ReplaceAll(text, template string) string {
	return c.re.ReplaceAllString(text, template)
}

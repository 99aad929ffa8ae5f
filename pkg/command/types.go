// Package command turns raw command tokens into pipeline stages.
//
// Each token becomes exactly one Stage; the token's prefix selects the
// stage kind and the remainder carries its parameters. All parsing and
// pattern compilation happens here, before any input line is processed, so
// a bad token can never abort a half-finished run.
package command

import (
	"linesift/pkg/pattern"
	"linesift/pkg/timestamp"
)

// Kind enumerates the stage variants.
type Kind string

const (
	// KindFilter keeps a line iff its pattern matches.
	KindFilter Kind = "filter"

	// KindNegativeFilter keeps a line iff its pattern does NOT match.
	KindNegativeFilter Kind = "negative-filter"

	// KindSubstitute rewrites matched portions of the line.
	KindSubstitute Kind = "substitute"

	// KindTimeRange keeps a line iff its leading timestamp falls inside
	// the range.
	KindTimeRange Kind = "time-range"

	// KindThreadHighlight is a recognized but unimplemented variant; it
	// evaluates as a no-op.
	KindThreadHighlight Kind = "thread-highlight"
)

// Stage is one pipeline step, built once from a single command token.
// Which fields are meaningful depends on Kind; the zero values are inert.
type Stage struct {
	// Kind selects the variant.
	Kind Kind

	// Token is the raw command token this stage was parsed from.
	Token string

	// Pattern is the compiled match pattern (filter, negative-filter,
	// substitute, thread-highlight).
	Pattern *pattern.Compiled

	// Highlight marks a filter whose matches are recorded as colored spans.
	Highlight bool

	// Color is the palette slot assigned to a highlighting stage,
	// NoColor otherwise.
	Color ColorID

	// Replacement is the substitute stage's rewrite template.
	Replacement string

	// Begin and End bound a time-range stage; nil means unbounded on
	// that side.
	Begin *timestamp.Timestamp
	End   *timestamp.Timestamp
}

// Contains reports whether ts falls inside a time-range stage's bounds.
func (s *Stage) Contains(ts timestamp.Timestamp) bool {
	if s.Begin != nil && ts.Before(*s.Begin) {
		return false
	}
	if s.End != nil && ts.After(*s.End) {
		return false
	}
	return true
}

// Package timestamp parses the H:MM:SS.fraction clock values that prefix
// log lines and gives them a total order.
//
// These are elapsed-time values, not wall-clock dates: hours may grow
// without bound, so time.Time layouts do not fit. A parsed Timestamp is a
// single nanosecond count, which makes comparison trivial.
package timestamp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InvalidTimestampError reports a malformed time literal.
type InvalidTimestampError struct {
	// Input is the raw string that failed to parse.
	Input string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Input, e.Reason)
}

// Timestamp is a point in a log's elapsed time, ordered by
// (hours, minutes, seconds, fraction).
type Timestamp struct {
	nanos int64
}

// leadingPattern matches a timestamp at the start of a line: multi-digit
// hours, two-digit minutes and seconds, variable-length fraction.
var leadingPattern = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})\.(\d+)`)

// Parse parses a complete H:MM:SS.fraction literal.
func Parse(raw string) (Timestamp, error) {
	m := leadingPattern.FindStringSubmatch(raw)
	if m == nil || m[0] != raw {
		return Timestamp{}, &InvalidTimestampError{Input: raw, Reason: "want H:MM:SS.fraction"}
	}
	return fromFields(raw, m[1], m[2], m[3], m[4])
}

// ExtractLeading scans the start of a log line for a timestamp.
// It returns the parsed timestamp and true, or false when the line does not
// begin with one. Lines without a leading timestamp never match a time
// range; that is a policy, not an error.
func ExtractLeading(line string) (Timestamp, bool) {
	m := leadingPattern.FindStringSubmatch(line)
	if m == nil {
		return Timestamp{}, false
	}
	ts, err := fromFields(m[0], m[1], m[2], m[3], m[4])
	if err != nil {
		return Timestamp{}, false
	}
	return ts, true
}

func fromFields(raw, hours, minutes, seconds, fraction string) (Timestamp, error) {
	h, err := strconv.ParseInt(hours, 10, 64)
	if err != nil {
		return Timestamp{}, &InvalidTimestampError{Input: raw, Reason: "hours out of range"}
	}
	m, _ := strconv.ParseInt(minutes, 10, 64)
	if m > 59 {
		return Timestamp{}, &InvalidTimestampError{Input: raw, Reason: "minutes out of range"}
	}
	s, _ := strconv.ParseInt(seconds, 10, 64)
	if s > 59 {
		return Timestamp{}, &InvalidTimestampError{Input: raw, Reason: "seconds out of range"}
	}

	// Fractions beyond nanosecond precision are truncated.
	if len(fraction) > 9 {
		fraction = fraction[:9]
	}
	frac, _ := strconv.ParseInt(fraction, 10, 64)
	for i := len(fraction); i < 9; i++ {
		frac *= 10
	}

	return Timestamp{nanos: ((h*3600+m*60+s)*1e9 + frac)}, nil
}

// Compare returns -1, 0, or +1 ordering t against other.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.nanos < other.nanos:
		return -1
	case t.nanos > other.nanos:
		return 1
	default:
		return 0
	}
}

// Before reports whether t precedes other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.nanos < other.nanos
}

// After reports whether t follows other.
func (t Timestamp) After(other Timestamp) bool {
	return t.nanos > other.nanos
}

// String formats the timestamp as H:MM:SS.fraction with trailing zeros
// trimmed from the fraction.
func (t Timestamp) String() string {
	total := t.nanos / 1e9
	frac := t.nanos % 1e9
	fracStr := strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
	if fracStr == "" {
		fracStr = "0"
	}
	return fmt.Sprintf("%d:%02d:%02d.%s", total/3600, (total/60)%60, total%60, fracStr)
}

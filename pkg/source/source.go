// Package source provides sequential line reading for the pipeline.
package source

import "context"

// Line is one raw input line.
type Line struct {
	// Text is the line content without its trailing newline.
	Text string

	// Source names where the line came from (a file path, or "stdin").
	Source string

	// Num is the 1-based line number within its source.
	Num int
}

// LineSource provides an iterator over input lines.
// Implementations must be safe for sequential access (not concurrent).
// No line is skipped or reordered; the pipeline decides what to drop.
type LineSource interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}

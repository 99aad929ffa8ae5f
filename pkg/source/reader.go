package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// ReaderSource reads lines from an io.Reader, typically stdin.
type ReaderSource struct {
	name    string
	scanner *bufio.Scanner
	line    int
}

// NewReaderSource creates a LineSource over r. name labels the source in
// errors ("stdin" for the standard input).
func NewReaderSource(r io.Reader, name string) *ReaderSource {
	return &ReaderSource{
		name:    name,
		scanner: newLineScanner(r),
	}
}

// Next returns the next line, or io.EOF at end of input.
func (s *ReaderSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.scanner.Scan() {
		s.line++
		return &Line{Text: s.scanner.Text(), Source: s.name, Num: s.line}, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.name, err)
	}
	return nil, io.EOF
}

// Close is a no-op; the caller owns the reader.
func (s *ReaderSource) Close() error {
	return nil
}

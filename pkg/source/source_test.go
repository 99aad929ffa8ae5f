package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func collect(t *testing.T, s LineSource) []*Line {
	t.Helper()
	ctx := context.Background()
	var lines []*Line
	for {
		line, err := s.Next(ctx)
		if errors.Is(err, io.EOF) {
			return lines
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		lines = append(lines, line)
	}
}

func TestReaderSource(t *testing.T) {
	s := NewReaderSource(strings.NewReader("one\ntwo\nthree\n"), "stdin")
	defer s.Close()

	lines := collect(t, s)
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i].Text != w {
			t.Errorf("line %d Text = %q, want %q", i, lines[i].Text, w)
		}
		if lines[i].Num != i+1 {
			t.Errorf("line %d Num = %d, want %d", i, lines[i].Num, i+1)
		}
		if lines[i].Source != "stdin" {
			t.Errorf("line %d Source = %q, want %q", i, lines[i].Source, "stdin")
		}
	}
}

func TestReaderSource_NoTrailingNewline(t *testing.T) {
	s := NewReaderSource(strings.NewReader("only"), "stdin")
	lines := collect(t, s)
	if len(lines) != 1 || lines[0].Text != "only" {
		t.Errorf("got %v, want single line %q", lines, "only")
	}
}

func TestReaderSource_Empty(t *testing.T) {
	s := NewReaderSource(strings.NewReader(""), "stdin")
	if lines := collect(t, s); len(lines) != 0 {
		t.Errorf("got %d lines from empty input, want 0", len(lines))
	}
}

func TestReaderSource_ContextCancellation(t *testing.T) {
	s := NewReaderSource(strings.NewReader("one\n"), "stdin")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}

func TestFileSource(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "first.log")
	second := filepath.Join(tmpDir, "second.log")
	if err := os.WriteFile(first, []byte("a1\na2\n"), 0644); err != nil {
		t.Fatalf("writing %s: %v", first, err)
	}
	if err := os.WriteFile(second, []byte("b1\n"), 0644); err != nil {
		t.Fatalf("writing %s: %v", second, err)
	}

	s := NewFileSource([]string{first, second})
	defer s.Close()

	lines := collect(t, s)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	// Argument order, not chronological merging.
	wantTexts := []string{"a1", "a2", "b1"}
	wantNums := []int{1, 2, 1}
	for i := range wantTexts {
		if lines[i].Text != wantTexts[i] {
			t.Errorf("line %d Text = %q, want %q", i, lines[i].Text, wantTexts[i])
		}
		if lines[i].Num != wantNums[i] {
			t.Errorf("line %d Num = %d, want %d", i, lines[i].Num, wantNums[i])
		}
	}
	if lines[0].Source != first || lines[2].Source != second {
		t.Errorf("sources = %q, %q; want %q, %q", lines[0].Source, lines[2].Source, first, second)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	s := NewFileSource([]string{filepath.Join(t.TempDir(), "absent.log")})
	defer s.Close()

	if _, err := s.Next(context.Background()); err == nil || errors.Is(err, io.EOF) {
		t.Errorf("Next() error = %v, want open failure", err)
	}
}

// Package render turns annotated pipeline results into output lines.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"linesift/pkg/command"
	"linesift/pkg/pipeline"
)

// PaletteSize is the number of distinct highlight colors. The color
// allocator wraps around at this count.
const PaletteSize = 6

// palette maps each ColorID to a terminal style. Standard ANSI foregrounds
// so highlights survive any terminal theme.
var palette = [PaletteSize]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
}

// Renderer writes one surviving line to the output stream.
type Renderer interface {
	// Render writes the result, including the trailing newline.
	Render(res *pipeline.Result, w io.Writer) error

	// Name returns the renderer name (ansi, plain).
	Name() string
}

// segment is a run of bytes sharing one color (or no color).
type segment struct {
	text  string
	color command.ColorID
}

// segments splits a result's text into colored runs. Spans are painted in
// stage order, so where spans overlap the last-applied stage's color wins.
// Zero-width spans paint nothing.
func segments(res *pipeline.Result) []segment {
	text := res.Text
	if text == "" {
		return nil
	}

	colors := make([]command.ColorID, len(text))
	for i := range colors {
		colors[i] = command.NoColor
	}
	for _, span := range res.Spans {
		start, end := span.Start, span.End
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}
		for i := start; i < end; i++ {
			colors[i] = span.Color
		}
	}

	var segs []segment
	runStart := 0
	for i := 1; i <= len(text); i++ {
		if i == len(text) || colors[i] != colors[runStart] {
			segs = append(segs, segment{text: text[runStart:i], color: colors[runStart]})
			runStart = i
		}
	}
	return segs
}

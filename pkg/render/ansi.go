package render

import (
	"fmt"
	"io"
	"strings"

	"linesift/pkg/command"
	"linesift/pkg/pipeline"
)

// ANSIRenderer writes lines with highlight spans colored via the palette.
type ANSIRenderer struct{}

// NewANSIRenderer creates a color renderer.
func NewANSIRenderer() *ANSIRenderer {
	return &ANSIRenderer{}
}

// Name returns the renderer name.
func (r *ANSIRenderer) Name() string {
	return "ansi"
}

// Render writes the line with each span styled by its palette slot.
func (r *ANSIRenderer) Render(res *pipeline.Result, w io.Writer) error {
	var b strings.Builder
	for _, seg := range segments(res) {
		if seg.color == command.NoColor {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(palette[int(seg.color)%PaletteSize].Render(seg.text))
	}
	_, err := fmt.Fprintln(w, b.String())
	return err
}

package render

import (
	"fmt"
	"io"

	"linesift/pkg/pipeline"
)

// PlainRenderer writes lines without color, for pipes and --no-color.
// Span annotations are dropped; the text is already final.
type PlainRenderer struct{}

// NewPlainRenderer creates a colorless renderer.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Name returns the renderer name.
func (r *PlainRenderer) Name() string {
	return "plain"
}

// Render writes the bare text.
func (r *PlainRenderer) Render(res *pipeline.Result, w io.Writer) error {
	_, err := fmt.Fprintln(w, res.Text)
	return err
}

// Package pipeline evaluates an ordered list of stages against input lines.
//
// A pipeline is built once, before the first line, and then consumes one
// line at a time. Per-line state (the working text, accumulated spans, the
// keep/discard verdict) is independent between lines; only the stage list
// and its color assignment are shared across the run.
package pipeline

import (
	"linesift/pkg/command"
	"linesift/pkg/timestamp"
)

// Span is a half-open byte range [Start, End) into a result's text,
// tagged with the palette slot of the stage that produced it.
type Span struct {
	Start int
	End   int
	Color command.ColorID
}

// Result is a line that survived the pipeline: its (possibly rewritten)
// text plus the highlight spans accumulated along the way. Spans from one
// stage never overlap each other; spans from different stages may.
type Result struct {
	Text  string
	Spans []Span
}

// Pipeline is an immutable, ordered list of stages.
type Pipeline struct {
	stages []*command.Stage
}

// New builds a pipeline over already-parsed stages. Stage order is fixed at
// construction and never reordered.
func New(stages []*command.Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// FromTokens parses command tokens and builds a pipeline, assigning palette
// slots (out of paletteSize) to highlighting stages in order. Any parse
// failure aborts construction; no partial pipeline ever runs.
func FromTokens(tokens []string, paletteSize int) (*Pipeline, error) {
	stages, err := command.ParseAll(tokens, command.NewColorAllocator(paletteSize))
	if err != nil {
		return nil, err
	}
	return New(stages), nil
}

// Stages returns the pipeline's stage list.
func (p *Pipeline) Stages() []*command.Stage {
	return p.stages
}

// Evaluate runs one line through the stages, left to right. It returns the
// annotated result and true when the line survives, or nil and false when
// some stage discards it. Discard is terminal: no later stage sees the
// line.
//
// Stages operate on the current text, so a filter after a substitution
// matches against the rewritten line. A substitution also drops any spans
// accumulated before it: their offsets belong to the old text.
//
// Contiguous runs of time-range stages evaluate as a union; the line passes
// the run if its leading timestamp falls inside any one of the ranges. A
// line with no leading timestamp never passes a time-range run.
func (p *Pipeline) Evaluate(line string) (*Result, bool) {
	text := line
	var spans []Span

	for i := 0; i < len(p.stages); i++ {
		stage := p.stages[i]

		switch stage.Kind {
		case command.KindFilter:
			if !stage.Pattern.Match(text) {
				return nil, false
			}
			if stage.Highlight {
				for _, m := range stage.Pattern.FindAll(text) {
					spans = append(spans, Span{Start: m[0], End: m[1], Color: stage.Color})
				}
			}

		case command.KindNegativeFilter:
			if stage.Pattern.Match(text) {
				return nil, false
			}

		case command.KindSubstitute:
			text = stage.Pattern.ReplaceAll(text, stage.Replacement)
			spans = nil

		case command.KindTimeRange:
			end := i + 1
			for end < len(p.stages) && p.stages[end].Kind == command.KindTimeRange {
				end++
			}
			if !anyRangeContains(p.stages[i:end], text) {
				return nil, false
			}
			i = end - 1

		case command.KindThreadHighlight:
			// Recognized but not implemented; the stage is inert.
		}
	}

	return &Result{Text: text, Spans: spans}, true
}

func anyRangeContains(ranges []*command.Stage, text string) bool {
	ts, ok := timestamp.ExtractLeading(text)
	if !ok {
		return false
	}
	for _, stage := range ranges {
		if stage.Contains(ts) {
			return true
		}
	}
	return false
}

package command

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"linesift/pkg/pattern"
	"linesift/pkg/timestamp"
)

// UnknownCommandSyntaxError reports a token whose body does not fit its
// recognized prefix.
type UnknownCommandSyntaxError struct {
	// Token is the raw command token.
	Token string

	// Reason describes what was malformed.
	Reason string
}

func (e *UnknownCommandSyntaxError) Error() string {
	return fmt.Sprintf("bad command %q: %s", e.Token, e.Reason)
}

// Parse turns a single command token into a Stage.
//
// Recognized prefixes, most specific first:
//
//	fc:PATTERN              filter, matches highlighted
//	fn:PATTERN              filter, no highlighting
//	ft:[BEGIN]-[END]        time range over leading timestamps
//	th:PATTERN              thread highlight (accepted, not evaluated)
//	n:PATTERN               negative filter
//	s:/PATTERN/REPLACEMENT/ substitution; any character may serve as the
//	                        delimiter, so patterns containing "/" stay
//	                        expressible
//
// Anything else is a bare pattern and behaves like fc:PATTERN. An
// unrecognized "letters:" prefix (say "h:true") is stripped first, so
// mistyped prefixes still filter on the intended text.
//
// Highlighting stages come back with Color set to NoColor; ParseAll assigns
// palette slots.
func Parse(token string) (*Stage, error) {
	switch {
	case strings.HasPrefix(token, "fc:"):
		return parseFilter(token, token[len("fc:"):], true)
	case strings.HasPrefix(token, "fn:"):
		return parseFilter(token, token[len("fn:"):], false)
	case strings.HasPrefix(token, "ft:"):
		return parseTimeRange(token, token[len("ft:"):])
	case strings.HasPrefix(token, "th:"):
		return parseThreadHighlight(token, token[len("th:"):])
	case strings.HasPrefix(token, "n:"):
		return parseNegativeFilter(token, token[len("n:"):])
	case strings.HasPrefix(token, "s:"):
		return parseSubstitute(token, token[len("s:"):])
	default:
		// Bare pattern: the ergonomic form.
		raw := token
		if m := unknownPrefix.FindString(token); m != "" {
			raw = token[len(m):]
		}
		return parseFilter(token, raw, true)
	}
}

var unknownPrefix = regexp.MustCompile(`^[A-Za-z]+:`)

// ParseAll parses an ordered list of command tokens into stages, assigning
// a palette slot to each highlighting stage in order.
func ParseAll(tokens []string, alloc *ColorAllocator) ([]*Stage, error) {
	stages := make([]*Stage, 0, len(tokens))
	for _, token := range tokens {
		stage, err := Parse(token)
		if err != nil {
			return nil, err
		}
		if stage.Kind == KindFilter && stage.Highlight {
			stage.Color = alloc.Allocate()
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

func parseFilter(token, raw string, highlight bool) (*Stage, error) {
	p, err := pattern.Compile(raw)
	if err != nil {
		return nil, err
	}
	return &Stage{
		Kind:      KindFilter,
		Token:     token,
		Pattern:   p,
		Highlight: highlight,
		Color:     NoColor,
	}, nil
}

func parseNegativeFilter(token, raw string) (*Stage, error) {
	p, err := pattern.Compile(raw)
	if err != nil {
		return nil, err
	}
	return &Stage{Kind: KindNegativeFilter, Token: token, Pattern: p, Color: NoColor}, nil
}

func parseSubstitute(token, rest string) (*Stage, error) {
	if rest == "" {
		return nil, &UnknownCommandSyntaxError{Token: token, Reason: "missing delimiter after s:"}
	}

	delim, size := utf8.DecodeRuneInString(rest)
	parts := strings.SplitN(rest[size:], string(delim), 3)
	if len(parts) < 3 {
		return nil, &UnknownCommandSyntaxError{
			Token:  token,
			Reason: fmt.Sprintf("want s:%[1]cPATTERN%[1]cREPLACEMENT%[1]c", delim),
		}
	}
	if parts[2] != "" {
		return nil, &UnknownCommandSyntaxError{
			Token:  token,
			Reason: fmt.Sprintf("unexpected text %q after closing delimiter", parts[2]),
		}
	}

	p, err := pattern.Compile(parts[0])
	if err != nil {
		return nil, err
	}
	return &Stage{
		Kind:        KindSubstitute,
		Token:       token,
		Pattern:     p,
		Replacement: parts[1],
		Color:       NoColor,
	}, nil
}

func parseTimeRange(token, rest string) (*Stage, error) {
	idx := strings.Index(rest, "-")
	if idx < 0 {
		return nil, &UnknownCommandSyntaxError{Token: token, Reason: "want ft:[BEGIN]-[END]"}
	}

	stage := &Stage{Kind: KindTimeRange, Token: token, Color: NoColor}

	if begin := rest[:idx]; begin != "" {
		ts, err := timestamp.Parse(begin)
		if err != nil {
			return nil, err
		}
		stage.Begin = &ts
	}
	if end := rest[idx+1:]; end != "" {
		ts, err := timestamp.Parse(end)
		if err != nil {
			return nil, err
		}
		stage.End = &ts
	}

	return stage, nil
}

func parseThreadHighlight(token, raw string) (*Stage, error) {
	// The pattern is validated now so the token round-trips through
	// presets, even though evaluation ignores the stage.
	p, err := pattern.Compile(raw)
	if err != nil {
		return nil, err
	}
	return &Stage{Kind: KindThreadHighlight, Token: token, Pattern: p, Color: NoColor}, nil
}

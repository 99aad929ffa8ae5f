package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"linesift/pkg/config"
	"linesift/pkg/pipeline"
	"linesift/pkg/render"
	"linesift/pkg/source"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// FilterOptions holds command-line options for the filter command.
type FilterOptions struct {
	Files   []string
	Preset  string
	Config  string
	NoColor bool
}

// NewFilterCommand creates the filter command.
func NewFilterCommand() *cobra.Command {
	opts := &FilterOptions{}

	cmd := &cobra.Command{
		Use:   "filter [flags] [COMMAND...]",
		Short: "Run lines from stdin or files through a command pipeline",
		Long: `Run every input line through the given commands, in order, and print
the lines that survive. A line dropped by one command is never seen by the
commands after it.

Examples:
  gst-launch ... 2>&1 | linesift filter sourcebuffer n:enqueue
  linesift filter -f player.log "fc:appsrc" "ft:0:00:10.0-0:00:20.0"
  linesift filter --preset sourcebuffer n:flush

Exit codes:
  0 - At least one line passed the pipeline
  1 - No lines passed
  2 - Bad command token, preset, or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringSliceVarP(&opts.Files, "file", "f", nil, "Read from file(s) instead of stdin (can be repeated)")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "Prepend the commands of a named preset")
	cmd.Flags().StringVar(&opts.Config, "config", "", "Preset file (default ~/"+config.DefaultFileName+")")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable highlight colors")

	return cmd
}

func runFilter(cmd *cobra.Command, args []string, opts *FilterOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tokens, err := collectTokens(ctx, args, opts)
	if err != nil {
		return err
	}

	// All construction-time failures surface here, before any line is read.
	p, err := pipeline.FromTokens(tokens, render.PaletteSize)
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}

	var src source.LineSource
	if len(opts.Files) > 0 {
		src = source.NewFileSource(opts.Files)
	} else {
		src = source.NewReaderSource(cmd.InOrStdin(), "stdin")
	}
	defer src.Close()

	out := cmd.OutOrStdout()
	renderer := chooseRenderer(opts, out)

	kept := 0
	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		res, ok := p.Evaluate(line.Text)
		if !ok {
			continue
		}
		if err := renderer.Render(res, out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		kept++
	}

	if kept == 0 {
		ExitCode = 1
	}
	return nil
}

// collectTokens merges preset commands (first) with positional tokens.
func collectTokens(ctx context.Context, args []string, opts *FilterOptions) ([]string, error) {
	if opts.Preset == "" {
		return args, nil
	}

	cfg, err := config.Load(ctx, config.ResolvePath(opts.Config))
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}
	preset, ok := cfg.Lookup(opts.Preset)
	if !ok {
		return nil, fmt.Errorf("no preset named %q", opts.Preset)
	}

	tokens := make([]string, 0, len(preset.Commands)+len(args))
	tokens = append(tokens, preset.Commands...)
	tokens = append(tokens, args...)
	return tokens, nil
}

// chooseRenderer picks color output unless it was disabled or stdout is not
// a terminal.
func chooseRenderer(opts *FilterOptions, out io.Writer) render.Renderer {
	if opts.NoColor {
		return render.NewPlainRenderer()
	}
	if f, ok := out.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return render.NewPlainRenderer()
		}
	}
	return render.NewANSIRenderer()
}

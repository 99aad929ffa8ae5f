package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linesift/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the preset file",
		Long: `Validate the preset file without running anything.

Checks:
  - YAML syntax
  - Required fields
  - Every command token parses (patterns compile, timestamps parse)
  - Preset names are unique`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Preset file (default ~/"+config.DefaultFileName+")")

	return cmd
}

func runValidate(cmd *cobra.Command, configPath string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path := config.ResolvePath(configPath)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", path)

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nPreset file valid!\n")
	fmt.Fprintf(out, "  Presets: %d\n", len(cfg.Presets))

	if len(cfg.Presets) > 0 {
		fmt.Fprintf(out, "\nPresets:\n")
		for i, preset := range cfg.Presets {
			fmt.Fprintf(out, "  %d. %s (%d command(s))\n", i+1, preset.Name, len(preset.Commands))
			if preset.Description != "" {
				fmt.Fprintf(out, "     %s\n", preset.Description)
			}
		}
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the preset file looked up in the home directory.
const DefaultFileName = ".linesift.yaml"

// EnvConfigPath overrides the preset file location.
const EnvConfigPath = "LINESIFT_CONFIG"

// ResolvePath picks the preset file path: an explicit flag value wins, then
// the LINESIFT_CONFIG environment variable, then ~/.linesift.yaml.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

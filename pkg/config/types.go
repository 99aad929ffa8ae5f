// Package config loads saved pipeline presets from a YAML file.
package config

// Config is the preset file contents.
type Config struct {
	// Presets are named, reusable command pipelines.
	Presets []Preset `yaml:"presets"`
}

// Preset is a saved pipeline: an ordered list of command tokens under a
// name.
type Preset struct {
	// Name identifies the preset on the command line.
	Name string `yaml:"name"`

	// Description says what the preset is for.
	Description string `yaml:"description,omitempty"`

	// Commands are the pipeline's command tokens, in evaluation order.
	Commands []string `yaml:"commands"`
}

// Lookup finds a preset by name.
func (c *Config) Lookup(name string) (*Preset, bool) {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			return &c.Presets[i], true
		}
	}
	return nil, false
}

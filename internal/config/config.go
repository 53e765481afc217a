// Package config holds the tunable thresholds for analysis, loaded
// from an optional .scrutiny.yaml file with CLI-flag overrides
// applied by the caller.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds are the calibrated limits the analyzers flag against.
// Changing these shifts the composite score, so overrides should be
// deliberate.
type Thresholds struct {
	// LongMethodLines is the non-blank body line count above which
	// a method is a Long Method smell.
	LongMethodLines int `yaml:"long_method_lines"`

	// LongTestLines is the non-blank body line count above which a
	// test method is flagged long.
	LongTestLines int `yaml:"long_test_lines"`

	// MaxLineLength is the absolute line length ceiling.
	MaxLineLength int `yaml:"max_line_length"`

	// DeepNesting is the running brace depth above which the file
	// gets a Deep Nesting smell.
	DeepNesting int `yaml:"deep_nesting"`

	// MeaningfulLineLength is the minimum trimmed length for a line
	// to participate in duplication detection.
	MeaningfulLineLength int `yaml:"meaningful_line_length"`

	// GodClassMethods is the method count above which the file is a
	// possible God Class.
	GodClassMethods int `yaml:"god_class_methods"`

	// GroupingTestCount is the test method count above which
	// ungrouped tests draw an organizational violation.
	GroupingTestCount int `yaml:"grouping_test_count"`

	// AAAPercent is the organized-test percentage at or below which
	// the AAA pattern is not considered present.
	AAAPercent float64 `yaml:"aaa_percent"`
}

// Config is the root configuration.
type Config struct {
	Thresholds Thresholds `yaml:"thresholds"`
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() *Config {
	return &Config{
		Thresholds: Thresholds{
			LongMethodLines:      30,
			LongTestLines:        20,
			MaxLineLength:        120,
			DeepNesting:          4,
			MeaningfulLineLength: 15,
			GodClassMethods:      20,
			GroupingTestCount:    10,
			AAAPercent:           50,
		},
	}
}

// Load reads a YAML config file and merges it over the defaults.
// An empty path returns the defaults. Unset (zero) fields keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	merge(&cfg.Thresholds, file.Thresholds)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies positive values from src over dst.
func merge(dst *Thresholds, src Thresholds) {
	if src.LongMethodLines > 0 {
		dst.LongMethodLines = src.LongMethodLines
	}
	if src.LongTestLines > 0 {
		dst.LongTestLines = src.LongTestLines
	}
	if src.MaxLineLength > 0 {
		dst.MaxLineLength = src.MaxLineLength
	}
	if src.DeepNesting > 0 {
		dst.DeepNesting = src.DeepNesting
	}
	if src.MeaningfulLineLength > 0 {
		dst.MeaningfulLineLength = src.MeaningfulLineLength
	}
	if src.GodClassMethods > 0 {
		dst.GodClassMethods = src.GodClassMethods
	}
	if src.GroupingTestCount > 0 {
		dst.GroupingTestCount = src.GroupingTestCount
	}
	if src.AAAPercent > 0 {
		dst.AAAPercent = src.AAAPercent
	}
}

// Validate rejects threshold combinations that would make every
// file flag (or no file ever flag).
func (c *Config) Validate() error {
	t := c.Thresholds
	if t.LongTestLines > t.LongMethodLines {
		return fmt.Errorf("long_test_lines (%d) must not exceed long_method_lines (%d)",
			t.LongTestLines, t.LongMethodLines)
	}
	if t.AAAPercent > 100 {
		return fmt.Errorf("aaa_percent (%g) must be at most 100", t.AAAPercent)
	}
	return nil
}

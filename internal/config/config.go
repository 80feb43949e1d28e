package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "redact.config.yml"

	envInputs      = "REDACT_INPUTS"
	envInputsFile  = "REDACT_INPUTS_FILE"
	envDetectors   = "REDACT_DETECTORS"
	envOutputDir   = "REDACT_OUTPUT_DIR"
	envFormats     = "REDACT_FORMATS"
	envTrace       = "REDACT_TRACE"
	envDryRun      = "REDACT_DRY_RUN"
	envSummaryFile = "REDACT_SUMMARY_FILE"
)

// Loader merges configuration coming from files, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
}

// RuntimeConfig contains the fully merged settings required by the sub-commands.
type RuntimeConfig struct {
	// Inputs are paths to transcripts to process; "-" means stdin.
	Inputs []string
	// Detectors restricts the detector set; empty means all built-ins.
	Detectors []string
	OutputDir string
	// Formats selects artifact kinds: "text" (redacted transcript) and/or
	// "json" (redaction report).
	Formats []string
	// Trace includes the reasoning trace in JSON reports.
	Trace bool
	// DryRun analyzes and reports counts without writing redacted artifacts.
	DryRun      bool
	SummaryFile string
}

// Overrides captures values coming from env vars or CLI flags.
type Overrides struct {
	Inputs      []string
	InputsFile  string
	Detectors   []string
	OutputDir   string
	Formats     []string
	Trace       *bool
	DryRun      *bool
	SummaryFile string
}

// DefaultRuntimeConfig returns the baseline configuration when no overrides are provided.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		OutputDir: "redact-results",
		Formats:   []string{"text", "json"},
		Trace:     true,
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			return cfg, err
		}
		if err := cfg.apply(fileOv); err != nil {
			return cfg, err
		}
	}

	if err := cfg.apply(overridesFromEnv()); err != nil {
		return cfg, err
	}

	if err := cfg.apply(override); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate ensures the config contains the minimum required data for the
// redact and analyze commands.
func (c RuntimeConfig) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("no inputs configured; provide --inputs, --inputs-file, or set REDACT_INPUTS")
	}

	if len(c.Formats) == 0 {
		return errors.New("at least one output format must be specified")
	}

	for _, format := range c.Formats {
		switch strings.ToLower(strings.TrimSpace(format)) {
		case "text", "json":
		default:
			return fmt.Errorf("unsupported format %q (expected text or json)", format)
		}
	}

	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	return nil
}

func (c *RuntimeConfig) apply(src Overrides) error {
	if len(src.Inputs) > 0 {
		c.Inputs = cleanList(src.Inputs)
	}

	if src.InputsFile != "" {
		values, err := readInputsFile(src.InputsFile)
		if err != nil {
			return err
		}
		c.Inputs = values
	}

	if len(src.Detectors) > 0 {
		c.Detectors = cleanList(src.Detectors)
	}

	if src.OutputDir != "" {
		c.OutputDir = src.OutputDir
	}

	if len(src.Formats) > 0 {
		c.Formats = cleanList(src.Formats)
	}

	if src.Trace != nil {
		c.Trace = *src.Trace
	}

	if src.DryRun != nil {
		c.DryRun = *src.DryRun
	}

	if src.SummaryFile != "" {
		c.SummaryFile = src.SummaryFile
	}

	return nil
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawConfig struct {
		Inputs      stringList `yaml:"inputs"`
		InputsFile  string     `yaml:"inputsFile"`
		Detectors   stringList `yaml:"detectors"`
		OutputDir   string     `yaml:"outputDir"`
		Formats     []string   `yaml:"formats"`
		Trace       *bool      `yaml:"trace"`
		DryRun      *bool      `yaml:"dryRun"`
		SummaryFile string     `yaml:"summaryFile"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, err
	}

	over := Overrides{
		Inputs:      raw.Inputs,
		InputsFile:  raw.InputsFile,
		Detectors:   raw.Detectors,
		OutputDir:   raw.OutputDir,
		Formats:     raw.Formats,
		SummaryFile: raw.SummaryFile,
	}

	if raw.Trace != nil {
		over.Trace = raw.Trace
	}

	if raw.DryRun != nil {
		over.DryRun = raw.DryRun
	}

	return over, nil
}

func overridesFromEnv() Overrides {
	ov := Overrides{}

	if value := os.Getenv(envInputs); value != "" {
		ov.Inputs = ParseList(value)
	}

	if value := os.Getenv(envInputsFile); value != "" {
		ov.InputsFile = value
	}

	if value := os.Getenv(envDetectors); value != "" {
		ov.Detectors = ParseList(value)
	}

	if value := os.Getenv(envOutputDir); value != "" {
		ov.OutputDir = value
	}

	if value := os.Getenv(envFormats); value != "" {
		ov.Formats = ParseList(value)
	}

	if value := os.Getenv(envTrace); value != "" {
		parsed := strings.EqualFold(value, "true") || value == "1"
		ov.Trace = &parsed
	}

	if value := os.Getenv(envDryRun); value != "" {
		parsed := strings.EqualFold(value, "true") || value == "1"
		ov.DryRun = &parsed
	}

	if value := os.Getenv(envSummaryFile); value != "" {
		ov.SummaryFile = value
	}

	return ov
}

// ParseList turns comma or newline separated input into individual values.
func ParseList(input string) []string {
	if input == "" {
		return nil
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	return cleanList(parts)
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		candidate := strings.TrimSpace(v)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

func readInputsFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var inputs []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return inputs, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// stringList enables YAML fields that can be specified as a scalar or sequence.
type stringList []string

func (t *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, node := range value.Content {
			out = append(out, strings.TrimSpace(node.Value))
		}
		*t = cleanList(out)
	case yaml.ScalarNode:
		*t = ParseList(value.Value)
	default:
		return fmt.Errorf("unsupported YAML type for list field")
	}
	return nil
}

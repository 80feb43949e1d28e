package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoadWithFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	inputsFile := filepath.Join(dir, "inputs.txt")
	if err := os.WriteFile(inputsFile, []byte("one.txt\ntwo.txt\n"), 0o600); err != nil {
		t.Fatalf("write inputs: %v", err)
	}

	configPath := filepath.Join(dir, "redact.config.yml")
	configBody := []byte("outputDir: out\ninputsFile: " + inputsFile + "\nformats:\n  - json\ndetectors: email,phone\n")
	if err := os.WriteFile(configPath, configBody, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(envFormats, "text")
	t.Setenv(envTrace, "false")

	loader := Loader{ConfigPath: configPath}
	cfg, err := loader.Load(Overrides{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}

	if len(cfg.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(cfg.Inputs))
	}

	if len(cfg.Detectors) != 2 {
		t.Fatalf("expected 2 detectors, got %#v", cfg.Detectors)
	}

	if cfg.OutputDir != "out" {
		t.Fatalf("expected output dir out, got %s", cfg.OutputDir)
	}

	if len(cfg.Formats) != 1 || cfg.Formats[0] != "text" {
		t.Fatalf("env override should win: %#v", cfg.Formats)
	}

	if cfg.Trace {
		t.Fatal("env override should disable trace")
	}
}

func TestOverridesApplyInputsList(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "redact.config.yml")
	if err := os.WriteFile(configPath, []byte("inputs:\n  - from-file.txt\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := Loader{ConfigPath: configPath}
	over := Overrides{Inputs: []string{"override.txt"}}
	cfg, err := loader.Load(over)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if len(cfg.Inputs) != 1 || cfg.Inputs[0] != "override.txt" {
		t.Fatalf("expected overrides to replace inputs, got %#v", cfg.Inputs)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Inputs = []string{"-"}
	cfg.Formats = []string{"xml"}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestValidateRequiresInputs(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when no inputs configured")
	}
}

func TestParseList(t *testing.T) {
	input := "a.txt,b.txt\nc.txt"
	values := ParseList(input)
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}
}

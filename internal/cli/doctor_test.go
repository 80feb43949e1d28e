package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestDoctorAllChecksPass(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cmd := newDoctorCmd(newTestLoader(t))
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output-dir", outDir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, stdout.String())
	}

	if !strings.Contains(stdout.String(), "All checks passed") {
		t.Fatalf("unexpected doctor output: %s", stdout.String())
	}

	// Every built-in detector must fire on the probe text.
	if strings.Contains(stdout.String(), "✗") {
		t.Fatalf("no check should fail: %s", stdout.String())
	}
}

func TestDoctorFailsOnUnknownDetector(t *testing.T) {
	cmd := newDoctorCmd(newTestLoader(t))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output-dir", t.TempDir(), "--detectors", "bogus"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected doctor to fail for unknown detector")
	}
}

func TestProbeTextCoversEveryDetector(t *testing.T) {
	checks := checkDetectors(nil)
	if len(checks) < 2 {
		t.Fatalf("expected registry check plus per-detector checks, got %d", len(checks))
	}
	for _, check := range checks {
		if check.Error != nil {
			t.Fatalf("check %s failed: %v", check.Name, check.Error)
		}
	}
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("TRAITKIT_SCENARIO", "")
	t.Setenv("TRAITKIT_NO_COLOR", "true")

	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunDefaultOutput(t *testing.T) {
	code, stdout, stderr := runCLI(t)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	want := "3 3\nsum = 2.4\nsum = 2.2\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty (headers only go to terminals)", stderr)
	}
}

func TestRunScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := []byte(`
static:
  a: {x: 0.5, y: 2}
  b: {x: 0.25, y: 3}
dynamic:
  rhs: 0.5
  elements:
    - kind: float
      value: 2
    - kind: point
      point: {x: 3, y: 9}
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, "-scenario", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	want := "0.75 5\nsum = 2.5\nsum = 3.5\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunScenarioFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := []byte(`
static:
  a: {x: 1, y: 1}
  b: {x: 1, y: 1}
dynamic:
  rhs: 1
  elements:
    - kind: float
      value: 1
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRAITKIT_NO_COLOR", "true")
	t.Setenv("TRAITKIT_SCENARIO", path)

	var stdout, stderr bytes.Buffer
	code := Run(nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if want := "2 2\nsum = 2\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunMissingScenario(t *testing.T) {
	code, _, stderr := runCLI(t, "-scenario", filepath.Join(t.TempDir(), "missing.yaml"))
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Error loading scenario") {
		t.Errorf("stderr = %q, want scenario load error", stderr)
	}
}

func TestRunBadScenarioKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte(`
dynamic:
  elements:
    - kind: matrix
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCLI(t, "-scenario", path)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "unknown element kind") {
		t.Errorf("stderr = %q, want unknown kind error", stderr)
	}
}

func TestRunInstances(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-instances")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	for _, want := range []string{
		"Registered instances:",
		"float32",
		"Point[float32]",
		"Point[float32]_float32_float32",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("listing missing %q:\n%s", want, stdout)
		}
	}
}

func TestRunBadFlag(t *testing.T) {
	code, _, _ := runCLI(t, "-no-such-flag")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

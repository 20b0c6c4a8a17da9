package blackbox

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func projectRootFromThisFile(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file: <root>/tests/blackbox/blackbox_test.go
	bbDir := filepath.Dir(thisFile)
	return filepath.Dir(filepath.Dir(bbDir))
}

func buildBinary(t *testing.T) string {
	t.Helper()
	root := projectRootFromThisFile(t)
	outDir := t.TempDir()
	binPath := filepath.Join(outDir, "browsersweep")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/browsersweep")
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go build failed: %v\n%s", err, string(out))
	}
	return binPath
}

// Dry runs only: the suite must never kill anything on the host running it.

func TestDryRunSucceeds(t *testing.T) {
	bin := buildBinary(t)
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, "--dry-run", "-v")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("dry run failed: %v\nstderr: %s", err, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "browser processes") &&
		!strings.Contains(out, "No automation browser processes found") {
		t.Fatalf("missing summary line, got: %q", out)
	}
}

func TestUnknownFlagExitsTwo(t *testing.T) {
	bin := buildBinary(t)
	cmd := exec.Command(bin, "--bogus")
	err := cmd.Run()
	ee, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if ee.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %d", ee.ExitCode())
	}
}

func TestMarkerOverrideFile(t *testing.T) {
	bin := buildBinary(t)
	d := t.TempDir()
	markers := filepath.Join(d, "markers.yaml")
	content := "browser_names: [no-such-browser-zzz]\nprofile_markers: [no-such-profile-zzz]\n"
	if err := os.WriteFile(markers, []byte(content), 0o644); err != nil {
		t.Fatalf("write markers: %v", err)
	}
	var stdout bytes.Buffer
	cmd := exec.Command(bin, "--dry-run", "--markers", markers)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		t.Fatalf("dry run with markers failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "No automation browser processes found") {
		t.Fatalf("expected none-found line, got: %q", stdout.String())
	}
}

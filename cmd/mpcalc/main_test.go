package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and runs it against a few argument sets.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	binName := "mpcalc"
	if runtime.GOOS == "windows" {
		binName = "mpcalc.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	build := exec.Command("go", "build", "-o", binPath, ".")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build mpcalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{name: "Help", args: []string{"--help"}, wantOut: "usage", wantCode: 0},
		{name: "Version Flag", args: []string{"--version"}, wantOut: "mpcalc", wantCode: 0},
		{name: "Quiet Division", args: []string{"-op", "div", "-q", "8589934591", "3"}, wantOut: "2863311531 0", wantCode: 0},
		{name: "Quiet GCD", args: []string{"-op", "gcd", "-q", "240", "46"}, wantOut: "2 -9 47", wantCode: 0},
		{name: "Hex Product", args: []string{"-op", "mul", "-base", "16", "-q", "ffffffffffffffff", "ffffffffffffffff"}, wantOut: "fffffffffffffffe0000000000000001", wantCode: 0},
		{name: "Underflow", args: []string{"-op", "sub", "1", "2"}, wantCode: 1},
		{name: "Division By Zero", args: []string{"-op", "div", "1", "0"}, wantCode: 1},
		{name: "Bad Operand", args: []string{"-op", "add", "12x", "1"}, wantCode: 4},
		{name: "Unknown Op", args: []string{"-op", "pow", "1", "2"}, wantCode: 4},
		{name: "Verify", args: []string{"-verify", "-rounds", "5", "-q"}, wantCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}

// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ubfx/siliconcompiler/internal/scrun"
)

func TestRootRejectsPositionalArgs(t *testing.T) {
	t.Parallel()

	if err := rootCmd.Args(rootCmd, []string{"unexpected"}); err == nil {
		t.Error("root command accepted a positional argument")
	}
	if err := rootCmd.Args(rootCmd, nil); err != nil {
		t.Errorf("root command rejected an empty argument list: %v", err)
	}
}

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "bare exit code",
			err:  &ExitError{Code: 2},
			want: "exit status 2",
		},
		{
			name: "wrapped cause",
			err:  &ExitError{Code: 127, Err: errors.New("locating sc: not found")},
			want: "locating sc: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &ExitError{Code: 1, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
}

func TestGetVersionString(t *testing.T) {
	prevVersion, prevCommit, prevDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = prevVersion, prevCommit, prevDate })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "0.3.0", "abc1234", "2021-04-01"
	if got := getVersionString(); got != "0.3.0 (commit: abc1234, built: 2021-04-01)" {
		t.Errorf("getVersionString() = %q", got)
	}
}

// withRunner swaps the runner constructor seam for one test.
func withRunner(t *testing.T, fn func() *scrun.Runner) {
	t.Helper()
	prev := newRunner
	newRunner = fn
	t.Cleanup(func() { newRunner = prev })
}

// newFlowCmd builds a throwaway command so runFlow's silence flags do
// not leak into the shared rootCmd.
func newFlowCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "gcd"}
	cmd.SetContext(context.Background())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd
}

func TestRunFlowPropagatesToolExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tool fixtures are shell scripts")
	}

	tool := filepath.Join(t.TempDir(), "sc")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\nexit 17\n"), 0o755); err != nil {
		t.Fatalf("writing fake tool: %v", err)
	}

	withRunner(t, func() *scrun.Runner {
		r := scrun.NewRunner()
		r.Tool = tool
		return r
	})

	err := runFlow(newFlowCmd(), nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runFlow() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 17 {
		t.Errorf("runFlow() exit code = %d, want 17", exitErr.Code)
	}
}

func TestRunFlowToolNotFound(t *testing.T) {
	withRunner(t, func() *scrun.Runner {
		r := scrun.NewRunner()
		r.Tool = "sc-tool-that-does-not-exist"
		return r
	})

	err := runFlow(newFlowCmd(), nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runFlow() error = %v, want *ExitError", err)
	}
	if exitErr.Code != int(scrun.ExitNotFound) {
		t.Errorf("runFlow() exit code = %d, want %d", exitErr.Code, scrun.ExitNotFound)
	}
	if exitErr.Err == nil {
		t.Error("runFlow() dropped the lookup error for a missing tool")
	}
}

func TestRunFlowSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tool fixtures are shell scripts")
	}

	tool := filepath.Join(t.TempDir(), "sc")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("writing fake tool: %v", err)
	}

	withRunner(t, func() *scrun.Runner {
		r := scrun.NewRunner()
		r.Tool = tool
		return r
	})

	if err := runFlow(newFlowCmd(), nil); err != nil {
		t.Errorf("runFlow() error = %v, want nil", err)
	}
}

// SPDX-License-Identifier: Apache-2.0

// Package scrun spawns the external sc tool as a child process and
// reports its exit status. The runner does not interpret, retry, or
// wrap tool failures: stdio is inherited, the call blocks until the
// child terminates, and the child's exit code is passed through.
package scrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ubfx/siliconcompiler/internal/flow"
)

// DefaultTool is the executable name of the silicon compiler CLI.
const DefaultTool = "sc"

// Runner executes flow invocations against the sc tool.
type Runner struct {
	// Tool is the executable name or path; defaults to DefaultTool.
	Tool string
	// Stdin, Stdout and Stderr are connected to the child process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner wired to the process's own stdio.
func NewRunner() *Runner {
	return &Runner{
		Tool:   DefaultTool,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run spawns exactly one child process for the invocation and blocks
// until it exits. A missing tool yields ExitNotFound with a wrapped
// lookup error; any exit the tool itself reports is returned as-is.
func (r *Runner) Run(ctx context.Context, inv flow.Invocation) *Result {
	tool := r.Tool
	if tool == "" {
		tool = DefaultTool
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return NewErrorResult(ExitNotFound, fmt.Errorf("locating %s: %w", tool, err))
	}

	args := inv.Args()
	log.Debug("launching flow", "tool", path, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(ExitFailure, fmt.Errorf("running %s: %w", tool, err))
	}

	return NewSuccessResult()
}

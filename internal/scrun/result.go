// SPDX-License-Identifier: Apache-2.0

package scrun

// Result is the outcome of one tool invocation. Error is set only for
// infrastructure failures (tool missing, spawn failure); a non-zero
// ExitCode with a nil Error is a normal tool-reported failure that the
// tool has already described on its own stderr.
type Result struct {
	ExitCode ExitCode
	Error    error
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no
// error. Use this for non-zero exits that represent normal process
// termination rather than infrastructure failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

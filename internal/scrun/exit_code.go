// SPDX-License-Identifier: Apache-2.0

package scrun

import "strconv"

type (
	// ExitCode represents a child process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int
)

const (
	// ExitFailure is the generic failure code used when the child could
	// not be started for a reason other than lookup failure.
	ExitFailure ExitCode = 1
	// ExitNotFound is the shell's command-not-found code, returned when
	// the tool cannot be located on the search path.
	ExitNotFound ExitCode = 127
)

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

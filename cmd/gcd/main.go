// SPDX-License-Identifier: Apache-2.0

// Command gcd launches the physical-design flow for the gcd sample
// design by invoking the sc silicon compiler with a fixed argument
// list. It takes no arguments: the design sources (gcd.v, gcd.sdc) are
// expected next to the installed binary, and their directory is handed
// to sc via -scpath so the flow works from any working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ubfx/siliconcompiler/internal/flow"
	"github.com/ubfx/siliconcompiler/internal/scpath"
	"github.com/ubfx/siliconcompiler/internal/scrun"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	//nolint:gochecknoglobals // Test seam for the runner constructor.
	newRunner = scrun.NewRunner

	// rootCmd is the sole command: run the flow, nothing else.
	rootCmd = &cobra.Command{
		Use:   "gcd",
		Short: "Run the gcd demo flow through the sc silicon compiler",
		Long: `Runs an RTL-to-GDS physical-design flow for the gcd sample design
on the freepdk45 target by invoking the external sc tool.

The design source (gcd.v) and timing constraints (gcd.sdc) must sit in
the same directory as this binary; that directory is passed to sc via
-scpath. All tool output streams through unchanged, and the tool's
exit code becomes this command's exit code.`,
		Args: cobra.NoArgs,
		RunE: runFlow,
	}
)

// runFlow resolves the install directory, assembles the fixed sc
// invocation and blocks until the tool exits.
func runFlow(cmd *cobra.Command, _ []string) error {
	scdir, err := scpath.Dir()
	if err != nil {
		return fmt.Errorf("resolving install directory: %w", err)
	}
	log.Debug("resolved sc search path", "dir", scdir)

	r := newRunner()
	r.Stdin = cmd.InOrStdin()
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = cmd.ErrOrStderr()

	res := r.Run(cmd.Context(), flow.GCD(scdir))
	if res.Error != nil {
		cmd.SilenceUsage = true
		return &ExitError{Code: int(res.ExitCode), Err: res.Error}
	}
	if !res.ExitCode.IsSuccess() {
		// The tool already reported its failure on stderr.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: int(res.ExitCode)}
	}
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// SPDX-License-Identifier: Apache-2.0

// Package scpath resolves the directory holding the running executable.
// The flow launcher references its design files by bare relative name
// and hands this directory to sc via -scpath, so resolution must not
// depend on the caller's working directory or on how the binary was
// invoked (direct path, $PATH lookup, relative path, symlinks).
package scpath

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	//nolint:gochecknoglobals // Test seam for os.Executable().
	osExecutable = os.Executable

	//nolint:gochecknoglobals // Test seam for filepath.EvalSymlinks().
	evalSymlinks = filepath.EvalSymlinks
)

// Dir returns the canonical absolute directory containing the real
// executable file, with any symlink indirection resolved.
func Dir() (string, error) {
	exe, err := osExecutable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}

	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path of %s: %w", exe, err)
	}

	resolved, err := evalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks of %s: %w", abs, err)
	}

	return filepath.Dir(resolved), nil
}

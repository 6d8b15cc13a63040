// SPDX-License-Identifier: Apache-2.0

// Package flow models the command line handed to the sc silicon
// compiler. An Invocation is an immutable description of one flow run;
// Args turns it into the exact token sequence sc's parser expects
// (positional input files first, switches after).
package flow

import "strconv"

// Default values for the gcd demo flow.
const (
	// DesignGCD is the name of the sample design.
	DesignGCD = "gcd"
	// TargetFreePDK45 selects the freepdk45 standard-cell target.
	TargetFreePDK45 = "freepdk45"
	// LogLevelInfo is the sc verbosity used by the demo flow.
	LogLevelInfo = "INFO"
)

type (
	// Point is a floorplan coordinate in microns.
	Point struct {
		X float64
		Y float64
	}

	// Rect is an axis-aligned floorplan rectangle described by its
	// lower-left and upper-right corners.
	Rect struct {
		LowerLeft  Point
		UpperRight Point
	}

	// Invocation captures every input of one sc run as an immutable value.
	// The zero value is not useful; construct via GCD or fill all fields.
	Invocation struct {
		// Design is the name of the design under compilation.
		Design string
		// Source is the HDL source file, relative to SCPath.
		Source string
		// Constraint is the timing constraint (SDC) file, relative to SCPath.
		Constraint string
		// Target selects the standard-cell/process target library.
		Target string
		// Outline is the die outline rectangle.
		Outline Rect
		// CoreArea is the placeable core area rectangle.
		CoreArea Rect
		// LogLevel is the sc logging verbosity (e.g. "INFO").
		LogLevel string
		// NoVerCheck skips the tool version compatibility check.
		NoVerCheck bool
		// Quiet suppresses non-essential tool output.
		Quiet bool
		// Relax relaxes strict rule checking.
		Relax bool
		// Track enables tracking within the tool.
		Track bool
		// Clean removes prior outputs before running.
		Clean bool
		// SCPath is the resolved directory holding the sibling design
		// files, passed to the tool so it can locate them.
		SCPath string
	}
)

// GCD returns the canned invocation for the gcd sample design. All
// values except scpath are fixed, so repeated calls yield a
// byte-identical argument list.
func GCD(scpath string) Invocation {
	return Invocation{
		Design:     DesignGCD,
		Source:     "gcd.v",
		Constraint: "gcd.sdc",
		Target:     TargetFreePDK45,
		Outline: Rect{
			LowerLeft:  Point{X: 0, Y: 0},
			UpperRight: Point{X: 100.13, Y: 100.8},
		},
		CoreArea: Rect{
			LowerLeft:  Point{X: 10.07, Y: 11.2},
			UpperRight: Point{X: 90.25, Y: 91},
		},
		LogLevel:   LogLevelInfo,
		NoVerCheck: true,
		Quiet:      true,
		Relax:      true,
		Track:      true,
		Clean:      true,
		SCPath:     scpath,
	}
}

// Args assembles the sc argument list. Positional values (design name,
// source file, constraint file) come first; sc's parser requires input
// files before switches. Each rectangle switch appears once per corner,
// with the two coordinates space-separated inside a single token, the
// tuple convention sc uses for complex switch values.
func (inv Invocation) Args() []string {
	args := []string{inv.Design, inv.Source, inv.Constraint}

	args = append(args, "-target", inv.Target)
	args = append(args,
		"-constraint_outline", coord(inv.Outline.LowerLeft),
		"-constraint_outline", coord(inv.Outline.UpperRight),
	)
	args = append(args,
		"-constraint_corearea", coord(inv.CoreArea.LowerLeft),
		"-constraint_corearea", coord(inv.CoreArea.UpperRight),
	)
	args = append(args, "-loglevel", inv.LogLevel)

	if inv.NoVerCheck {
		args = append(args, "-novercheck")
	}
	if inv.Quiet {
		args = append(args, "-quiet")
	}
	if inv.Relax {
		args = append(args, "-relax")
	}
	if inv.Track {
		args = append(args, "-track")
	}
	if inv.Clean {
		args = append(args, "-clean")
	}

	return append(args, "-scpath", inv.SCPath)
}

// coord renders a point as "X Y" using the shortest decimal form
// (100.8, not 100.800000), keeping the emitted bytes identical to the
// values written in GCD.
func coord(p Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + " " + strconv.FormatFloat(p.Y, 'f', -1, 64)
}

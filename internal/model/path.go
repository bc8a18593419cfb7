// Package model defines the data structures for anchored fixture resolution.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// AnchorPath is the offset from the current working directory to a named
// ancestor directory, expressed as a number of ascend ("..") steps.
//
// Zero ascends means the working directory itself is the anchor.
type AnchorPath struct {
	Ascends int
}

// Path renders the anchor as a relative path ("." for zero ascends).
func (a AnchorPath) Path() Path {
	if a.Ascends <= 0 {
		return Path(".")
	}

	steps := make([]string, a.Ascends)
	for i := range steps {
		steps[i] = ".."
	}

	return Path(filepath.Join(steps...))
}

// String implements fmt.Stringer.
func (a AnchorPath) String() string {
	return string(a.Path())
}

// Match is the outcome of locating a fragment below an anchor.
type Match struct {
	// Fragment is the caller-supplied string, unchanged.
	Fragment Path
	// Found is the path of the first entry whose trailing window matched,
	// relative to the working directory the anchor was computed from.
	Found Path
}

package domain

import (
	"iter"
	"path/filepath"
	"strings"
)

// Fragment is a caller-supplied partial path split into its meaningful
// components. Empty, "." and ".." segments are dropped.
type Fragment struct {
	raw        string
	components []string
	set        map[string]struct{}
}

// NewFragment parses raw into a Fragment.
func NewFragment(raw string) Fragment {
	components := make([]string, 0)

	for _, part := range SplitPath(raw) {
		if part == ".." {
			continue
		}

		components = append(components, part)
	}

	set := make(map[string]struct{}, len(components))
	for _, part := range components {
		set[part] = struct{}{}
	}

	return Fragment{raw: raw, components: components, set: set}
}

// String returns the fragment exactly as supplied.
func (f Fragment) String() string {
	return f.raw
}

// Len is the trailing window size k.
func (f Fragment) Len() int {
	return len(f.components)
}

// Components returns the filtered components in their original order.
func (f Fragment) Components() []string {
	return append([]string(nil), f.components...)
}

// MatchesPath reports whether every fragment component appears in the
// last Len() components of path. Order does not matter. Paths with fewer
// than Len() components never match.
func (f Fragment) MatchesPath(path string) bool {
	components := SplitPath(path)

	k := f.Len()
	if len(components) < k {
		return false
	}

	window := make(map[string]struct{}, k)
	for _, part := range components[len(components)-k:] {
		window[part] = struct{}{}
	}

	for part := range f.set {
		if _, ok := window[part]; !ok {
			return false
		}
	}

	return true
}

// FirstMatch returns the first candidate matched by f, consuming candidates
// only up to that point.
func FirstMatch(f Fragment, candidates iter.Seq[string]) (string, bool) {
	for candidate := range candidates {
		if f.MatchesPath(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// SplitPath splits path into its components, dropping
// empty and "." segments. ".." segments are kept.
func SplitPath(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")

	components := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}

		components = append(components, part)
	}

	return components
}

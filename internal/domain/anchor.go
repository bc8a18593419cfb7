package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/RickarySanchez/RusticFourier/internal/adapter"
	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// FindRoot walks the working directory's ancestor chain from the innermost
// component outward and returns how many ascends lead to the first
// component named name. A working directory that is itself named name
// yields zero ascends.
func FindRoot(fsAdapter adapter.SourceFSAdapter, name string) (m.AnchorPath, error) {
	wd, err := fsAdapter.Getwd()
	if err != nil {
		slog.Error("Failed to read working directory", "error", err)
		return m.AnchorPath{}, &ResolveError{Kind: m.IOFailure, Input: name, Err: fmt.Errorf("working directory: %w", err)}
	}

	return findRootIn(wd, name)
}

func findRootIn(wd m.Path, name string) (m.AnchorPath, error) {
	components := SplitPath(string(wd)[len(filepath.VolumeName(string(wd))):])

	for ascends := 0; ascends < len(components); ascends++ {
		if components[len(components)-1-ascends] == name {
			return m.AnchorPath{Ascends: ascends}, nil
		}
	}

	slog.Debug("Anchor directory not in ancestor chain", "name", name, "wd", wd)

	return m.AnchorPath{}, &ResolveError{Kind: m.RootNotFound, Input: name}
}

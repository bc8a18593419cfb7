package domain

import (
	"log/slog"

	"github.com/RickarySanchez/RusticFourier/internal/adapter"
	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// Locator finds the on-disk location of a fragment.
type Locator interface {
	Locate(fragment string) (m.Match, error)
}

// Loader reads fixture files located through a Locator.
type Loader struct {
	locator   Locator
	fsAdapter adapter.SourceFSAdapter
}

// NewLoader constructs a Loader.
func NewLoader(locator Locator, fsAdapter adapter.SourceFSAdapter) *Loader {
	return &Loader{locator: locator, fsAdapter: fsAdapter}
}

// Load locates fragment and decodes the file found there. The file is
// opened only after the fragment resolves.
func (l *Loader) Load(fragment string) (m.Fixture[float64], error) {
	fixture, _, err := LoadAs[float64](l, fragment)
	return fixture, err
}

// LoadAs is Load for an arbitrary element type. It also returns the match
// so callers can report where the fixture was found.
func LoadAs[T m.Float](l *Loader, fragment string) (m.Fixture[T], m.Match, error) {
	match, err := l.locator.Locate(fragment)
	if err != nil {
		return m.Fixture[T]{}, m.Match{}, err
	}

	content, err := l.fsAdapter.ReadFile(match.Found)
	if err != nil {
		slog.Error("Failed to read fixture", "fragment", fragment, "path", match.Found, "error", err)
		return m.Fixture[T]{}, match, &ResolveError{Kind: m.IOFailure, Input: string(match.Found), Err: err}
	}

	fixture, err := m.ParseFixture[T](content)
	if err != nil {
		slog.Error("Failed to decode fixture", "fragment", fragment, "path", match.Found, "error", err)
		return m.Fixture[T]{}, match, &ResolveError{Kind: m.DecodeFailure, Input: string(match.Found), Err: err}
	}

	return fixture, match, nil
}

// ReadFixture anchors at the ancestor named rootName, then loads fragment.
func ReadFixture(rootName, fragment string) (m.Fixture[float64], error) {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	resolver, err := NewResolver(fsAdapter, rootName)
	if err != nil {
		return m.Fixture[float64]{}, err
	}

	return NewLoader(resolver, fsAdapter).Load(fragment)
}

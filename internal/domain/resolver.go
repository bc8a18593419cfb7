package domain

import (
	"io/fs"
	"iter"
	"log/slog"
	"strings"

	"github.com/RickarySanchez/RusticFourier/internal/adapter"
	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverConfig)

type resolverConfig struct {
	skipHidden bool
}

// WithSkipHidden excludes dot-prefixed entries below the anchor (and the
// contents of dot-prefixed directories) from matching.
func WithSkipHidden(skip bool) ResolverOption {
	return func(c *resolverConfig) {
		c.skipHidden = skip
	}
}

// Resolver finds fragments below an anchor directory. The anchor is fixed
// at construction, so a Resolver is safe for concurrent use.
type Resolver struct {
	fsAdapter  adapter.SourceFSAdapter
	anchor     m.AnchorPath
	skipHidden bool
}

// NewResolver locates the ancestor named rootName and returns a Resolver
// anchored there.
func NewResolver(fsAdapter adapter.SourceFSAdapter, rootName string, opts ...ResolverOption) (*Resolver, error) {
	anchor, err := FindRoot(fsAdapter, rootName)
	if err != nil {
		return nil, err
	}

	return NewResolverAt(fsAdapter, anchor, opts...), nil
}

// NewResolverAt returns a Resolver for an already computed anchor.
func NewResolverAt(fsAdapter adapter.SourceFSAdapter, anchor m.AnchorPath, opts ...ResolverOption) *Resolver {
	cfg := resolverConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Resolver{
		fsAdapter:  fsAdapter,
		anchor:     anchor,
		skipHidden: cfg.skipHidden,
	}
}

// Anchor returns the offset from the working directory to the anchor.
func (r *Resolver) Anchor() m.AnchorPath {
	return r.anchor
}

// Resolve confirms that some entry below the anchor matches fragment and
// returns fragment unchanged.
func (r *Resolver) Resolve(fragment string) (m.Path, error) {
	match, err := r.Locate(fragment)
	if err != nil {
		return "", err
	}

	return match.Fragment, nil
}

// Locate returns the first entry below the anchor whose trailing window
// contains every component of fragment.
func (r *Resolver) Locate(fragment string) (m.Match, error) {
	root := r.anchor.Path()

	if _, err := r.fsAdapter.FileInfo(root); err != nil {
		slog.Error("Anchor directory is not readable", "anchor", root, "error", err)
		return m.Match{}, &ResolveError{Kind: m.IOFailure, Input: string(root), Err: err}
	}

	var rootErr error

	found, ok := FirstMatch(NewFragment(fragment), r.entries(root, &rootErr))
	if rootErr != nil {
		slog.Error("Anchor directory cannot be listed", "anchor", root, "error", rootErr)
		return m.Match{}, &ResolveError{Kind: m.IOFailure, Input: string(root), Err: rootErr}
	}

	if !ok {
		slog.Debug("Fragment not found below anchor", "fragment", fragment, "anchor", root)
		return m.Match{}, &ResolveError{Kind: m.FragmentUnresolved, Input: fragment}
	}

	slog.Debug("Resolved fragment", "fragment", fragment, "found", found)

	return m.Match{Fragment: m.Path(fragment), Found: m.Path(found)}, nil
}

// entries yields every path below root, root included. Entries that cannot
// be read are skipped. A failure to read root itself stops the walk and is
// stored in rootErr.
func (r *Resolver) entries(root m.Path, rootErr *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = r.fsAdapter.Walk(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil && path == string(root) {
				*rootErr = err
				return err
			}

			if err != nil {
				slog.Debug("Skipping unreadable entry", "path", path, "error", err)
				return nil
			}

			if r.skipHidden && path != string(root) && strings.HasPrefix(entry.Name(), ".") {
				if entry.IsDir() {
					return adapter.ErrSkipDir
				}

				return nil
			}

			if !yield(path) {
				return adapter.ErrSkipAll
			}

			return nil
		})
	}
}

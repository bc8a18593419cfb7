package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RickarySanchez/RusticFourier/internal/adapter"
	"github.com/RickarySanchez/RusticFourier/internal/controller"
	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// RootArgs contains the arguments for locating the anchor.
type RootArgs struct {
	Name string
}

// ResolveArgs contains the arguments for resolving fragments.
type ResolveArgs struct {
	Root       string
	Fragments  []string
	SkipHidden bool
}

// LoadArgs contains the arguments for loading a single fixture.
type LoadArgs struct {
	Root       string
	Fragment   string
	SkipHidden bool
}

// ScanArgs contains the arguments for loading a batch of fixtures.
type ScanArgs struct {
	Root       string
	Fragments  []string
	SkipHidden bool
	Threads    int
	Reports    m.Path
}

// ViewArgs contains the arguments for viewing a saved scan.
type ViewArgs struct {
	Reports m.Path
}

// Workflow runs the user-facing operations and hands results to the UI.
type Workflow interface {
	Root(ctx context.Context, args RootArgs) error
	Resolve(ctx context.Context, args ResolveArgs) error
	Load(ctx context.Context, args LoadArgs) error
	Scan(ctx context.Context, args ScanArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, reportStore adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
	}
}

func (w *workflow) Root(ctx context.Context, args RootArgs) error {
	anchor, err := FindRoot(w.SourceFSAdapter, args.Name)
	if err != nil {
		return err
	}

	return w.DisplayRoot(ctx, args.Name, anchor)
}

// Resolve prints every fragment it can locate and fails with a joined
// error naming each fragment it could not.
func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	resolver, err := w.newResolver(args.Root, args.SkipHidden)
	if err != nil {
		return err
	}

	var errs []error

	for _, fragment := range args.Fragments {
		match, err := resolver.Locate(fragment)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := w.DisplayResolution(ctx, match); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	return errors.Join(errs...)
}

func (w *workflow) Load(ctx context.Context, args LoadArgs) error {
	resolver, err := w.newResolver(args.Root, args.SkipHidden)
	if err != nil {
		return err
	}

	fixture, match, err := LoadAs[float64](NewLoader(resolver, w.SourceFSAdapter), args.Fragment)
	if err != nil {
		return err
	}

	return w.DisplayFixture(ctx, match, fixture)
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	resolver, err := w.newResolver(args.Root, args.SkipHidden)
	if err != nil {
		return err
	}

	catalog := NewCatalog(NewLoader(resolver, w.SourceFSAdapter))

	reports, err := catalog.LoadAll(ctx, args.Fragments, args.Threads)
	if err != nil {
		slog.Error("Fixture scan aborted", "error", err)
		return fmt.Errorf("scan: %w", err)
	}

	if err := w.SaveReports(args.Reports, reports); err != nil {
		slog.Error("Failed to save reports", "path", args.Reports, "error", err)
		return fmt.Errorf("save reports: %w", err)
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if _, failed := m.CountReports(reports); failed > 0 {
		return fmt.Errorf("%d of %d fixture(s) failed to load", failed, len(reports))
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.DisplayReports(ctx, reports)
}

func (w *workflow) newResolver(root string, skipHidden bool) (*Resolver, error) {
	resolver, err := NewResolver(w.SourceFSAdapter, root, WithSkipHidden(skipHidden))
	if err != nil {
		slog.Error("Failed to anchor resolver", "root", root, "error", err)
		return nil, err
	}

	return resolver, nil
}

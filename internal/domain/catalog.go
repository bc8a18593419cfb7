package domain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// Catalog loads many fixtures, turning individual failures into reports
// instead of aborting the batch.
type Catalog struct {
	loader *Loader
}

// NewCatalog constructs a Catalog.
func NewCatalog(loader *Loader) *Catalog {
	return &Catalog{loader: loader}
}

// LoadAll loads every fragment with at most threads concurrent loads
// (unbounded when threads <= 0). Reports are returned in fragment order.
// Only context cancellation fails the call.
func (c *Catalog) LoadAll(ctx context.Context, fragments []string, threads int) ([]m.LoadReport, error) {
	reports := make([]m.LoadReport, len(fragments))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, fragment := range fragments {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			reports[i] = c.load(fragment)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	loaded, failed := m.CountReports(reports)
	slog.Info("Fixture scan finished", "loaded", loaded, "failed", failed)

	return reports, nil
}

func (c *Catalog) load(fragment string) m.LoadReport {
	report := m.LoadReport{Fragment: m.Path(fragment)}

	fixture, match, err := LoadAs[float64](c.loader, fragment)
	report.Found = match.Found
	report.Status = StatusOf(err)

	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Function = fixture.Function
	report.Input = fixture.InputData.Summary()
	report.Output = fixture.OutputData.Summary()

	return report
}

// Package controller provides output adapters for displaying resolution and
// fixture scan results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// UI defines how commands present their results.
// Implementations can use different output methods (plain or styled text).
type UI interface {
	DisplayRoot(ctx context.Context, name string, anchor m.AnchorPath) error
	DisplayResolution(ctx context.Context, match m.Match) error
	DisplayFixture(ctx context.Context, match m.Match, fixture m.Fixture[float64]) error
	DisplayReports(ctx context.Context, reports []m.LoadReport) error
}

// NewUI returns a SimpleUI writing to cmd's output, styled when the output
// is a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// SimpleUI implements UI on top of the cobra command's output stream.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI. Status labels are colored when styled
// is true.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayRoot prints the anchor offset for name.
func (s *SimpleUI) DisplayRoot(ctx context.Context, name string, anchor m.AnchorPath) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s: %s (%d ascend(s))\n", name, anchor, anchor.Ascends)
}

// DisplayResolution prints a fragment and where it was found.
func (s *SimpleUI) DisplayResolution(ctx context.Context, match m.Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s -> %s\n", match.Fragment, match.Found)
}

// DisplayFixture prints a loaded fixture's metadata and payload summaries.
func (s *SimpleUI) DisplayFixture(ctx context.Context, match m.Match, fixture m.Fixture[float64]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := [][2]string{
		{"file", string(match.Found)},
		{"function", fixture.Function},
		{"path", fixture.Path},
		{"input", fixture.InputData.Summary()},
		{"output", fixture.OutputData.Summary()},
	}

	for _, line := range lines {
		if err := s.printf("%-9s %s\n", line[0]+":", line[1]); err != nil {
			return err
		}
	}

	return nil
}

// DisplayReports prints a table of scan reports followed by totals.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.LoadReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.printf("\n%s", s.renderReportsTable(reports)); err != nil {
		return err
	}

	loaded, failed := m.CountReports(reports)
	if err := s.printf("\nTotal: %d | Loaded: %d | Failed: %d\n", len(reports), loaded, failed); err != nil {
		return err
	}

	for _, report := range reports {
		if report.OK() {
			continue
		}

		if err := s.printf("%s: %s\n", report.Fragment, report.Error); err != nil {
			return err
		}
	}

	return nil
}

func (s *SimpleUI) renderReportsTable(reports []m.LoadReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Fragment", "Status", "Function", "Input", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, report := range reports {
		table.Append([]string{
			string(report.Fragment),
			s.statusLabel(report.Status),
			report.Function,
			report.Input,
			report.Output,
		})
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) statusLabel(status m.LoadStatus) string {
	label := status.String()
	if !s.styled {
		return label
	}

	if status == m.Loaded {
		return okStyle.Render(label)
	}

	return failStyle.Render(label)
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

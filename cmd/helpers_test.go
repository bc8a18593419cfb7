package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	domainmocks "github.com/RickarySanchez/RusticFourier/internal/domain/mocks"
)

// withMockWorkflow swaps the package workflow for a mock until the test ends.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// executeSubcommand runs sub under a fresh root command, logging to a
// temporary file.
func executeSubcommand(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "fixtures.log")))

	err := cmd.Execute()

	return out.String(), err
}

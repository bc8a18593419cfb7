package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RickarySanchez/RusticFourier/internal/domain"
	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".fixtures-reports")
	})).Return(nil)

	_, err := executeSubcommand(t, newViewCmd(), "view")
	require.NoError(t, err)
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	})).Return(nil)

	_, err := executeSubcommand(t, newViewCmd(), "view", "--output", "./reports-dir")
	require.NoError(t, err)
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	withMockWorkflow(t)

	_, err := executeSubcommand(t, newViewCmd(), "view", "./custom-reports")
	require.Error(t, err)
}

package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mouse-blink/dailyscale/internal/adapter"
	adaptermocks "github.com/mouse-blink/dailyscale/internal/adapter/mocks"
	"github.com/mouse-blink/dailyscale/internal/domain"
	domainmocks "github.com/mouse-blink/dailyscale/internal/domain/mocks"
	m "github.com/mouse-blink/dailyscale/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withMocks swaps the package level workflow and config store for the test.
func withMocks(t *testing.T, prefs adapter.Preferences) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockConfig := adaptermocks.NewMockConfigStore(t)
	mockConfig.On("Load", mock.Anything).Return(prefs, nil).Maybe()

	originalWorkflow, originalConfig := workflow, configStore
	workflow, configStore = mockWorkflow, mockConfig

	t.Cleanup(func() {
		workflow, configStore = originalWorkflow, originalConfig
	})

	return mockWorkflow
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestRootCmd_Defaults(t *testing.T) {
	mockWorkflow := withMocks(t, adapter.Preferences{})

	mockWorkflow.On("Today", domain.TodayArgs{SelectArgs: domain.SelectArgs{Tuning: m.StandardE6}}).Return(nil)

	require.NoError(t, execute(newRootCmd()))
}

func TestRootCmd_Flags(t *testing.T) {
	mockWorkflow := withMocks(t, adapter.Preferences{})

	mockWorkflow.On("Today", domain.TodayArgs{SelectArgs: domain.SelectArgs{
		Tuning:         m.OpenG6,
		Scales:         []m.Scale{m.Major, m.Dorian},
		RootNotes:      []m.Accidental{m.AccBFlat, m.AccCSharp},
		StartingFrets:  []int{0, 5},
		FullRandomness: true,
		Uncolored:      true,
	}}).Return(nil)

	err := execute(newRootCmd(),
		"-t", "open-g6",
		"-s", "major,dorian",
		"-n", "b-flat,c#",
		"-f", "0,5",
		"-r", "-c",
	)
	require.NoError(t, err)
}

func TestRootCmd_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown tuning", []string{"--tuning", "banjo"}},
		{"unknown scale", []string{"--scales", "bebop"}},
		{"unknown note", []string{"--root-notes", "h"}},
		{"starting fret off the neck", []string{"--starting-frets", "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withMocks(t, adapter.Preferences{})

			err := execute(newRootCmd(), tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestRootCmd_PreferencesFillUnsetFlags(t *testing.T) {
	mockWorkflow := withMocks(t, adapter.Preferences{
		Tuning:        "drop-a7",
		Scales:        []string{"locrian"},
		RootNotes:     []string{"e-flat"},
		StartingFrets: []int{12},
		Uncolored:     true,
	})

	mockWorkflow.On("Today", domain.TodayArgs{SelectArgs: domain.SelectArgs{
		Tuning:        m.DropA7,
		Scales:        []m.Scale{m.Aeolian},
		RootNotes:     []m.Accidental{m.AccEFlat},
		StartingFrets: []int{12},
		Uncolored:     true,
	}}).Return(nil)

	require.NoError(t, execute(newRootCmd(), "--scales", "aeolian"))
}

func TestRootCmd_ConfigError(t *testing.T) {
	mockConfig := adaptermocks.NewMockConfigStore(t)
	mockConfig.On("Load", "custom.yaml").Return(adapter.Preferences{}, errors.New("parse config custom.yaml: bad"))

	originalConfig := configStore
	configStore = mockConfig
	defer func() { configStore = originalConfig }()

	err := execute(newRootCmd(), "--config", "custom.yaml")

	assert.ErrorContains(t, err, "parse config")
}

func TestRootCmd_WorkflowError(t *testing.T) {
	mockWorkflow := withMocks(t, adapter.Preferences{})
	mockWorkflow.On("Today", mock.Anything).Return(errors.New("boom"))

	assert.EqualError(t, execute(newRootCmd()), "boom")
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	withMocks(t, adapter.Preferences{})

	assert.Error(t, execute(newRootCmd(), "extra"))
}

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/handler/cmd/handler/commands"
	"go.trai.ch/handler/internal/app"
	"go.trai.ch/handler/internal/build"
	"go.trai.ch/handler/internal/core/domain"
)

type call struct {
	method string
	config string
	key    string
	values map[string]any
}

type mockApp struct {
	calls    []call
	runOpts  app.RunOptions
	runErr   error
	settings []app.Setting
	existed  bool
}

func (m *mockApp) Run(_ context.Context, opts app.RunOptions) error {
	m.runOpts = opts
	m.calls = append(m.calls, call{method: "run", config: opts.Config})
	return m.runErr
}

func (m *mockApp) SettingsGet(_ context.Context, config, key string) ([]app.Setting, error) {
	m.calls = append(m.calls, call{method: "get", config: config, key: key})
	return m.settings, nil
}

func (m *mockApp) SettingsSet(_ context.Context, config, key string, values map[string]any) error {
	m.calls = append(m.calls, call{method: "set", config: config, key: key, values: values})
	return nil
}

func (m *mockApp) SettingsPatch(_ context.Context, config, key string, values map[string]any) error {
	m.calls = append(m.calls, call{method: "patch", config: config, key: key, values: values})
	return nil
}

func (m *mockApp) SettingsDelete(_ context.Context, config, key string) (bool, error) {
	m.calls = append(m.calls, call{method: "delete", config: config, key: key})
	return m.existed, nil
}

func (m *mockApp) SettingsClear(_ context.Context, config string) error {
	m.calls = append(m.calls, call{method: "clear", config: config})
	return nil
}

func execute(t *testing.T, m *mockApp, args ...string) (string, string, error) {
	t.Helper()
	cli := commands.New(m)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cli.SetOutput(stdout, stderr)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags", func(t *testing.T) {
		m := &mockApp{}
		_, _, err := execute(t, m, "run", "-c", "conf/handler.yaml",
			"--emit", "greet:world,42,true", "-e", "tick", "--watch")
		require.NoError(t, err)

		assert.Equal(t, app.RunOptions{
			Config: "conf/handler.yaml",
			Watch:  true,
			Emits: []app.Emission{
				{Event: "greet", Args: []any{"world", 42, true}},
				{Event: "tick"},
			},
		}, m.runOpts)
	})

	t.Run("defaults to the working directory", func(t *testing.T) {
		m := &mockApp{}
		_, _, err := execute(t, m, "run")
		require.NoError(t, err)
		assert.Equal(t, ".", m.runOpts.Config)
		assert.False(t, m.runOpts.Watch)
	})

	t.Run("rejects an emit without event", func(t *testing.T) {
		m := &mockApp{}
		_, _, err := execute(t, m, "run", "--emit", ":x")
		require.ErrorIs(t, err, domain.ErrMissingEvent)
		assert.Empty(t, m.calls)
	})

	t.Run("returns run errors", func(t *testing.T) {
		m := &mockApp{runErr: errors.New("simulated error")}
		_, _, err := execute(t, m, "run")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Settings(t *testing.T) {
	t.Run("set parses assignments", func(t *testing.T) {
		m := &mockApp{}
		_, _, err := execute(t, m, "settings", "set", "ui", "color=red", "size=3", "dark=false")
		require.NoError(t, err)
		require.Len(t, m.calls, 1)
		assert.Equal(t, call{
			method: "set",
			config: ".",
			key:    "ui",
			values: map[string]any{"color": "red", "size": 3, "dark": false},
		}, m.calls[0])
	})

	t.Run("patch rejects malformed assignment", func(t *testing.T) {
		m := &mockApp{}
		_, _, err := execute(t, m, "settings", "patch", "ui", "color")
		require.ErrorIs(t, err, domain.ErrInvalidAssignment)
		assert.Empty(t, m.calls)
	})

	t.Run("delete warns when absent", func(t *testing.T) {
		m := &mockApp{}
		_, stderr, err := execute(t, m, "--config", "x.yaml", "settings", "delete", "ui")
		require.NoError(t, err)
		assert.Equal(t, []call{{method: "delete", config: "x.yaml", key: "ui"}}, m.calls)
		assert.Contains(t, stderr, "ui was not set")
	})

	t.Run("clear", func(t *testing.T) {
		m := &mockApp{}
		_, _, err := execute(t, m, "settings", "clear")
		require.NoError(t, err)
		assert.Equal(t, []call{{method: "clear", config: "."}}, m.calls)
	})

	t.Run("get prints the overlay", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		m := &mockApp{settings: []app.Setting{
			{Key: "color", Value: "red"},
			{Key: "prefix", Value: "hello", Default: true},
			{Key: "size", Value: 3},
		}}
		stdout, _, err := execute(t, m, "settings", "get", "ui")
		require.NoError(t, err)

		goldie.New(t).Assert(t, "settings_get", []byte(stdout))
	})
}

func TestCommands_JSONFlag(t *testing.T) {
	var got []bool
	cli := commands.New(&mockApp{})
	cli.OnJSON(func(b bool) { got = append(got, b) })
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--json", "version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []bool{true}, got)
}

func TestCommands_Version(t *testing.T) {
	stdout, _, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "handler version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", stdout)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/handler/internal/adapters/config"
	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
emitter:
  bindThis: true
listeners:
  - id: greet
    event: greet
    module: ./greet.go
    symbol: OnGreet
    once: true
    bindEmitterParameter: false
  - event: bye
    module: file:///opt/mods/bye.go
settings:
  driver: file
  path: settings.json
  defaults:
    prefix: hello
`)

	m, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, m.Path)
	assert.Equal(t, dir, m.Dir)
	assert.Equal(t, domain.FileURL(dir+string(filepath.Separator)), m.Base)
	assert.Equal(t, domain.EmitterDefaults{BindThis: true}, m.Emitter)

	require.Len(t, m.Listeners, 2)
	assert.Equal(t, domain.ListenerSpec{
		ID:                   "greet",
		Event:                "greet",
		Module:               "./greet.go",
		Symbol:               "OnGreet",
		Once:                 domain.True,
		BindThis:             domain.Unset,
		BindEmitterParameter: domain.False,
	}, m.Listeners[0])
	assert.Empty(t, m.Listeners[1].ID)
	assert.Equal(t, domain.DefaultListenerSymbol, m.Listeners[1].Symbol)

	assert.Equal(t, domain.SettingsSpec{
		Driver:   domain.DriverFile,
		Path:     filepath.Join(dir, "settings.json"),
		Defaults: map[string]any{"prefix": "hello"},
	}, m.Settings)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "base: https://example.com/mods/\n")

	m, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/mods/", m.Base)
	assert.Equal(t, domain.DriverMemory, m.Settings.Driver)
	assert.Empty(t, m.Listeners)
}

func TestLoad_FindsManifestInParent(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "listeners: []\n")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	m, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, path, m.Path)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid yaml",
			content: "listeners: [",
			wantMsg: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "listener without event",
			content: "listeners:\n  - module: ./a.go\n",
			wantErr: domain.ErrInvalidManifest,
		},
		{
			name:    "listener without module",
			content: "listeners:\n  - event: a\n",
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "unknown driver",
			content: "settings:\n  driver: redis\n",
			wantErr: domain.ErrUnknownDriver,
		},
		{
			name:    "file driver without path",
			content: "settings:\n  driver: sqlite\n",
			wantErr: domain.ErrInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)

			_, err := config.NewLoader(nil).Load(path)
			require.Error(t, err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.NewLoader(nil).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

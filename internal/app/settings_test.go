package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/handler/internal/app"
	"go.trai.ch/handler/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_Settings(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("cfg").Return(f.manifest(), nil).AnyTimes()
	ctx := context.Background()

	got, err := f.app.SettingsGet(ctx, "cfg", "ui")
	require.NoError(t, err)
	assert.Equal(t, []app.Setting{
		{Key: "color", Value: "blue", Default: true},
		{Key: "prefix", Value: "hello", Default: true},
	}, got)

	require.NoError(t, f.app.SettingsSet(ctx, "cfg", "ui", map[string]any{"color": "red"}))
	require.NoError(t, f.app.SettingsPatch(ctx, "cfg", "ui", map[string]any{"size": "large"}))

	got, err = f.app.SettingsGet(ctx, "cfg", "ui")
	require.NoError(t, err)
	assert.Equal(t, []app.Setting{
		{Key: "color", Value: "red"},
		{Key: "prefix", Value: "hello", Default: true},
		{Key: "size", Value: "large"},
	}, got)

	existed, err := f.app.SettingsDelete(ctx, "cfg", "ui")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = f.app.SettingsDelete(ctx, "cfg", "ui")
	require.NoError(t, err)
	assert.False(t, existed)

	require.NoError(t, f.app.SettingsSet(ctx, "cfg", "other", map[string]any{"a": "b"}))
	require.NoError(t, f.app.SettingsClear(ctx, "cfg"))

	got, err = f.app.SettingsGet(ctx, "cfg", "other")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, s := range got {
		assert.True(t, s.Default)
	}
}

func TestApp_SettingsRejectsEmptySet(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("cfg").Return(f.manifest(), nil)

	err := f.app.SettingsSet(context.Background(), "cfg", "ui", nil)
	require.ErrorIs(t, err, domain.ErrFalsyValue)
}

func TestApp_SettingsUnknownDriver(t *testing.T) {
	f := newFixture(t)
	m := f.manifest()
	m.Settings.Driver = "redis"
	f.loader.EXPECT().Load(gomock.Any()).Return(m, nil)

	_, err := f.app.SettingsGet(context.Background(), "cfg", "ui")
	require.ErrorIs(t, err, domain.ErrUnknownDriver)
}

func TestApp_SettingsMemoryDriverWarnsOnWrite(t *testing.T) {
	f := newFixture(t)
	m := f.manifest()
	m.Settings = domain.SettingsSpec{Driver: domain.DriverMemory}
	f.loader.EXPECT().Load("cfg").Return(m, nil).AnyTimes()
	ctx := context.Background()

	_, err := f.app.SettingsGet(ctx, "cfg", "ui")
	require.NoError(t, err)
	assert.Empty(t, f.warns, "reads do not warn")

	require.NoError(t, f.app.SettingsSet(ctx, "cfg", "ui", map[string]any{"color": "red"}))
	require.Len(t, f.warns, 1)
	assert.Contains(t, f.warns[0], "changes are discarded")

	got, err := f.app.SettingsGet(ctx, "cfg", "ui")
	require.NoError(t, err)
	assert.Empty(t, got, "each command opens a fresh memory adapter")
}

func TestApp_SettingsFileDriverDoesNotWarn(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("cfg").Return(f.manifest(), nil)

	require.NoError(t, f.app.SettingsSet(context.Background(), "cfg", "ui", map[string]any{"color": "red"}))
	assert.Empty(t, f.warns)
}

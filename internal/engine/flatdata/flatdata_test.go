package flatdata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/handler/internal/adapters/kv"
	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/core/ports"
	"go.trai.ch/handler/internal/core/ports/mocks"
	"go.trai.ch/handler/internal/engine/flatdata"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, defaults map[string]any) *flatdata.Store {
	t.Helper()
	s, err := flatdata.NewStore(kv.NewMemory(), defaults)
	require.NoError(t, err)
	return s
}

func newAsyncStore(t *testing.T, adapter ports.AsyncKeyValueAdapter, defaults map[string]any) *flatdata.AsyncStore {
	t.Helper()
	s, err := flatdata.NewAsyncStore(adapter, defaults)
	require.NoError(t, err)
	return s
}

func TestWrapper_View(t *testing.T) {
	w := flatdata.NewWrapper(map[string]any{"a": 5}, map[string]any{"a": 1, "b": 2}, "k")
	v := w.View()

	assert.Same(t, v, w.View(), "view is cached")

	a, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, 5, a)

	b, ok := v.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, b)

	_, ok = v.Get("c")
	assert.False(t, ok)

	v.Set("b", 3)
	assert.Equal(t, map[string]any{"a": 5, "b": 3}, w.FlatData())
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, w.Defaults(), "defaults are never written")

	assert.True(t, v.Delete("b"))
	assert.False(t, v.Delete("b"))
	b, _ = v.Get("b")
	assert.Equal(t, 2, b, "default shows through after delete")

	assert.Equal(t, []string{"a"}, v.Keys())
	assert.Equal(t, "k", w.ID())
}

func TestWrapper_CopiesInput(t *testing.T) {
	data := map[string]any{"a": 1}
	w := flatdata.NewWrapper(data, nil, nil)

	w.View().Set("a", 2)

	assert.Equal(t, 1, data["a"])
	assert.Nil(t, w.ID())
}

func TestStore_Overlay(t *testing.T) {
	s := newStore(t, map[string]any{"a": 1, "b": 2})

	require.NoError(t, s.Set("k", flatdata.Data{"a": 5}))

	w, err := s.Get("k")
	require.NoError(t, err)
	a, _ := w.View().Get("a")
	b, _ := w.View().Get("b")
	assert.Equal(t, 5, a)
	assert.Equal(t, 2, b)

	require.NoError(t, s.Patch("k", flatdata.Data{"b": 9}))

	w, err = s.Get("k")
	require.NoError(t, err)
	b, _ = w.View().Get("b")
	assert.Equal(t, 9, b)
	assert.Equal(t, map[string]any{"a": 5, "b": 9}, w.FlatData())
}

func TestStore_SetRejectsFalsy(t *testing.T) {
	s := newStore(t, nil)
	var nilWrapper *flatdata.Wrapper

	tests := []struct {
		name  string
		value flatdata.Source
	}{
		{name: "nil source", value: nil},
		{name: "nil data", value: flatdata.Data(nil)},
		{name: "nil wrapper", value: nilWrapper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Set("k", tt.value)
			require.ErrorIs(t, err, domain.ErrFalsyValue)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	require.NoError(t, s.Set("k", flatdata.Data{}), "an empty object is not falsy")
}

func TestStore_SetUnwrapsWrapper(t *testing.T) {
	s := newStore(t, map[string]any{"d": true})

	w := flatdata.NewWrapper(map[string]any{"x": 1}, map[string]any{"ignored": 1}, nil)
	require.NoError(t, s.Set("k", w))

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 1}, got.FlatData())
}

func TestStore_PatchMissingEntry(t *testing.T) {
	s := newStore(t, nil)

	require.NoError(t, s.Patch("k", nil))

	w, err := s.Get("k")
	require.NoError(t, err)
	assert.Empty(t, w.FlatData())
}

func TestStore_DeleteAndClear(t *testing.T) {
	s := newStore(t, nil)
	require.NoError(t, s.Set("a", flatdata.Data{"x": 1}))
	require.NoError(t, s.Set("b", flatdata.Data{"x": 1}))

	ok, err := s.Delete("a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete("a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Clear())
	w, err := s.Get("b")
	require.NoError(t, err)
	assert.Empty(t, w.FlatData())
}

func TestStore_AdapterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockKeyValueAdapter(ctrl)
	boom := errors.New("disk full")

	adapter.EXPECT().Get("k").Return(nil, false, boom)
	adapter.EXPECT().Set("k", gomock.Any()).Return(boom)

	s, err := flatdata.NewStore(adapter, nil)
	require.NoError(t, err)

	_, err = s.Get("k")
	require.ErrorIs(t, err, boom)

	err = s.Set("k", flatdata.Data{"a": 1})
	require.ErrorIs(t, err, boom)
}

func TestAsyncStore_Patch(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAsyncKeyValueAdapter(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		adapter.EXPECT().Get(ctx, "k").Return(map[string]any{"a": 5, "b": 1}, true, nil),
		adapter.EXPECT().Set(ctx, "k", map[string]any{"a": 5, "b": 9, "c": 3}).Return(nil),
	)

	s := newAsyncStore(t, adapter, map[string]any{"a": 1})
	require.NoError(t, s.Patch(ctx, "k", flatdata.Data{"b": 9, "c": 3}))
}

func TestAsyncStore_PatchOverwritesInterleavedSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAsyncKeyValueAdapter(ctrl)
	ctx := context.Background()

	s := newAsyncStore(t, adapter, nil)

	// A Set that lands between Patch's read and write is lost.
	gomock.InOrder(
		adapter.EXPECT().Get(ctx, "k").DoAndReturn(func(context.Context, string) (map[string]any, bool, error) {
			require.NoError(t, s.Set(ctx, "k", flatdata.Data{"x": "concurrent"}))
			return map[string]any{"a": 1}, true, nil
		}),
		adapter.EXPECT().Set(ctx, "k", map[string]any{"x": "concurrent"}).Return(nil),
		adapter.EXPECT().Set(ctx, "k", map[string]any{"a": 1, "b": 2}).Return(nil),
	)

	require.NoError(t, s.Patch(ctx, "k", flatdata.Data{"b": 2}))
}

func TestAsyncStore_GetDeleteClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAsyncKeyValueAdapter(ctrl)
	ctx := context.Background()

	adapter.EXPECT().Get(ctx, "k").Return(nil, false, nil)
	adapter.EXPECT().Delete(ctx, "k").Return(true, nil)
	adapter.EXPECT().Clear(ctx).Return(nil)

	s := newAsyncStore(t, adapter, map[string]any{"a": 1})

	w, err := s.Get(ctx, "k")
	require.NoError(t, err)
	a, ok := w.View().Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, a)

	ok, err = s.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Clear(ctx))

	err = s.Set(ctx, "k", nil)
	assert.ErrorIs(t, err, domain.ErrFalsyValue)
}

func TestNewStore_RequiresAdapter(t *testing.T) {
	_, err := flatdata.NewStore(nil, nil)
	require.ErrorIs(t, err, domain.ErrMissingAdapter)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = flatdata.NewAsyncStore(nil, map[string]any{"a": 1})
	require.ErrorIs(t, err, domain.ErrMissingAdapter)
}

func TestAsyncStore_OverAsyncBridge(t *testing.T) {
	ctx := context.Background()
	s := newAsyncStore(t, kv.Async(kv.NewMemory()), map[string]any{"a": 1})

	require.NoError(t, s.Set(ctx, "k", flatdata.Data{"b": 2}))

	w, err := s.Get(ctx, "k")
	require.NoError(t, err)
	a, _ := w.View().Get("a")
	assert.Equal(t, 1, a)
	assert.Equal(t, map[string]any{"b": 2}, w.FlatData())
}

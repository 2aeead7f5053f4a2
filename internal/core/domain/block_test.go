package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/handler/internal/core/domain"
)

func TestNewBlock(t *testing.T) {
	t.Run("keeps an explicit id", func(t *testing.T) {
		b := domain.NewBlock("greet", func() any { return "generated" })
		assert.Equal(t, "greet", b.BlockID())
		assert.Empty(t, b.ModuleSpecifier())
	})

	t.Run("generates a missing id", func(t *testing.T) {
		calls := 0
		b := domain.NewBlock(nil, func() any {
			calls++
			return calls
		})
		assert.Equal(t, 1, b.BlockID())
		assert.Equal(t, 1, calls)
	})

	t.Run("module specifier can be set later", func(t *testing.T) {
		b := domain.NewBlock(1, nil)
		b.SetModuleSpecifier("file:///root/x.go")
		assert.Equal(t, "file:///root/x.go", b.ModuleSpecifier())
	})
}

func TestNewBoxModule(t *testing.T) {
	b := domain.NewBoxModule("k", "file:///m.go", 42, nil)

	assert.Equal(t, "k", b.BlockID())
	assert.Equal(t, "file:///m.go", b.ModuleSpecifier())
	assert.Equal(t, 42, b.Value)

	var rec domain.Record = b
	assert.Empty(t, rec.TypeTag())
}

func TestTriState_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		state domain.TriState
		def   bool
		want  bool
	}{
		{name: "unset uses default true", state: domain.Unset, def: true, want: true},
		{name: "unset uses default false", state: domain.Unset, def: false, want: false},
		{name: "explicit false beats default", state: domain.False, def: true, want: false},
		{name: "explicit true beats default", state: domain.True, def: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Resolve(tt.def))
		})
	}
}

func TestTriFromPtr(t *testing.T) {
	yes, no := true, false

	assert.Equal(t, domain.Unset, domain.TriFromPtr(nil))
	assert.Equal(t, domain.True, domain.TriFromPtr(&yes))
	assert.Equal(t, domain.False, domain.TriFromPtr(&no))
	assert.False(t, domain.Unset.IsSet())
	assert.Equal(t, "unset", domain.Unset.String())
}

func TestHandle_Bind(t *testing.T) {
	var gotThis any
	var gotArgs []any
	h := domain.NewHandle(func(this any, args ...any) {
		gotThis = this
		gotArgs = args
	})

	t.Run("call passes receiver through", func(t *testing.T) {
		h.Call("emitter", 1, 2)
		assert.Equal(t, "emitter", gotThis)
		assert.Equal(t, []any{1, 2}, gotArgs)
	})

	t.Run("bind fixes receiver", func(t *testing.T) {
		bound := h.Bind("record")
		assert.NotSame(t, h, bound)

		bound.Call("emitter", 1)
		assert.Equal(t, "record", gotThis)
		assert.Equal(t, []any{1}, gotArgs)
	})

	t.Run("bind leading prepends argument", func(t *testing.T) {
		bound := h.BindLeading("record", "emitter")
		bound.Call("ignored", "payload")
		assert.Equal(t, "record", gotThis)
		assert.Equal(t, []any{"emitter", "payload"}, gotArgs)
	})

	t.Run("nil function has no handle", func(t *testing.T) {
		assert.Nil(t, domain.NewHandle(nil))
	})
}

func TestNamespace_Names(t *testing.T) {
	ns := domain.Namespace{"b": 1, "a": 2}

	v, ok := ns.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []string{"a", "b"}, ns.Names())
}

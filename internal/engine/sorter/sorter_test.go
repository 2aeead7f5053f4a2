package sorter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/handler/internal/core/domain"
	"go.trai.ch/handler/internal/engine/construct"
	"go.trai.ch/handler/internal/engine/sorter"
)

type command struct {
	*domain.Block
}

type setting struct {
	*domain.Block
}

type named interface {
	domain.Record
	Name() string
}

type task struct {
	*domain.Block
}

func (task) Name() string { return "task" }

func newCommand(id string) *command { return &command{Block: domain.NewBlock(id, nil)} }

func newSetting(id string) *setting { return &setting{Block: domain.NewBlock(id, nil)} }

func TestSorter_TagBeatsClass(t *testing.T) {
	byTag := construct.NewBase()
	byClass := construct.NewBase()

	s := sorter.New().
		RegisterType("tagged", byTag).
		RegisterClass("commands", sorter.TypeOf[*command](), byClass)

	rec := newCommand("c1")
	rec.Type = "tagged"
	s.Load(rec)

	assert.Equal(t, 1, byTag.Len())
	assert.Zero(t, byClass.Len())
}

func TestSorter_ClassFallback(t *testing.T) {
	commands := construct.NewBase()
	settings := construct.NewBase()

	s := sorter.New().
		RegisterClass("commands", sorter.TypeOf[command](), commands).
		RegisterClass("settings", sorter.TypeOf[*setting](), settings)

	unregistered := newSetting("s2")
	unregistered.Type = "nobody"

	s.Load(newCommand("c1"), newSetting("s1"), unregistered)

	assert.Equal(t, 1, commands.Len())
	assert.Equal(t, 2, settings.Len(), "unknown tags fall back to class scan")
}

func TestSorter_InterfaceClass(t *testing.T) {
	c := construct.NewBase()

	sorter.New().
		RegisterClass("named", sorter.TypeOf[named](), c).
		Load(&task{Block: domain.NewBlock("t", nil)}, newCommand("c"))

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("t")
	assert.True(t, ok)
}

func TestSorter_FirstRegisteredClassWins(t *testing.T) {
	first := construct.NewBase()
	second := construct.NewBase()

	sorter.New().
		RegisterClass("a", sorter.TypeOf[domain.Record](), first).
		RegisterClass("b", sorter.TypeOf[*command](), second).
		Load(newCommand("c"))

	assert.Equal(t, 1, first.Len())
	assert.Zero(t, second.Len())
}

func TestSorter_ClassWithoutConstructIsSkipped(t *testing.T) {
	fallback := construct.NewBase()

	sorter.New().
		RegisterClass("a", sorter.TypeOf[*command](), nil).
		RegisterClass("b", sorter.TypeOf[domain.Record](), fallback).
		Load(newCommand("c"))

	assert.Equal(t, 1, fallback.Len())
}

func TestSorter_Unmatched(t *testing.T) {
	c := construct.NewBase()
	var nilCommand *command

	s := sorter.New().RegisterType("commands", c)
	s.Load()
	s.Load(nil, nilCommand, newSetting("s"))

	assert.Zero(t, c.Len())
}

func TestSorter_RegisterIgnoresMissingArguments(t *testing.T) {
	s := sorter.New().
		RegisterType("", construct.NewBase()).
		RegisterType("x", nil)

	_, ok := s.Construct("x")
	assert.False(t, ok)
}

func TestSorter_Remove(t *testing.T) {
	tests := []struct {
		name        string
		remove      func(*sorter.Sorter)
		wantType    bool
		wantClassed bool
	}{
		{
			name:        "remove type cascades to class",
			remove:      func(s *sorter.Sorter) { s.RemoveType("commands", true) },
			wantType:    false,
			wantClassed: false,
		},
		{
			name:        "remove type keeps class",
			remove:      func(s *sorter.Sorter) { s.RemoveType("commands", false) },
			wantType:    false,
			wantClassed: false,
		},
		{
			name:        "remove class cascades to type",
			remove:      func(s *sorter.Sorter) { s.RemoveClass("commands", true) },
			wantType:    false,
			wantClassed: false,
		},
		{
			name:        "remove drops both bindings",
			remove:      func(s *sorter.Sorter) { s.Remove("commands") },
			wantType:    false,
			wantClassed: false,
		},
		{
			name:        "remove class keeps type",
			remove:      func(s *sorter.Sorter) { s.RemoveClass("commands", false) },
			wantType:    true,
			wantClassed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := construct.NewBase()
			s := sorter.New().RegisterClass("commands", sorter.TypeOf[*command](), c)

			tt.remove(s)

			_, ok := s.Construct("commands")
			assert.Equal(t, tt.wantType, ok)

			s.Load(newCommand("untagged"))
			assert.Equal(t, tt.wantClassed, c.Len() == 1)
		})
	}
}

func TestSorter_RemoveTypeKeepsClassBinding(t *testing.T) {
	c := construct.NewBase()
	s := sorter.New().RegisterClass("commands", sorter.TypeOf[*command](), c)

	s.RemoveType("commands", false).RegisterType("commands", c)
	s.Load(newCommand("c"))

	assert.Equal(t, 1, c.Len(), "class binding survived and routes to the re-registered type")
}

func TestSorter_Unload(t *testing.T) {
	c := construct.NewBase()
	rec := newCommand("c")

	s := sorter.New().RegisterClass("commands", sorter.TypeOf[*command](), c)
	s.Load(rec).Unload(rec)

	assert.Zero(t, c.Len())
}

package registry

import (
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
)

type stubGame struct{ id, title string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stub(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndList(t *testing.T) {
	Register("zz-test-late", 99, stub("zz-test-late", "Late"))
	Register("aa-test-early", -99, stub("aa-test-early", "Early"))

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d games, expected at least 2", len(list))
	}
	if list[0].ID != "aa-test-early" {
		t.Errorf("first game = %q, expected lowest order first", list[0].ID)
	}
	if list[len(list)-1].ID != "zz-test-late" {
		t.Errorf("last game = %q, expected highest order last", list[len(list)-1].ID)
	}
	if list[0].Title != "Early" {
		t.Errorf("Title = %q, expected Early", list[0].Title)
	}
}

func TestCreate(t *testing.T) {
	Register("create-test", 0, stub("create-test", "Create"))

	g, err := Create("create-test")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "create-test" {
		t.Errorf("ID() = %q, expected create-test", g.ID())
	}
	if !Exists("create-test") {
		t.Error("Exists should report registered game")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown game should fail")
	}
	if Exists("missing") {
		t.Error("Exists should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", 0, stub("dup-test", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", 0, stub("dup-test", "Dup"))
}

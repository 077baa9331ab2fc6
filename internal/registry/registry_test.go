package registry

import (
	"testing"

	"github.com/vovakirdan/tweety-escape/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Canvas)                   {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func register(id, title string) {
	Register(id, func() Game { return &stubGame{id: id, title: title} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("zz-stub", "Zed")
	register("aa-stub", "Ay")

	if !Exists("aa-stub") || !Exists("zz-stub") {
		t.Fatal("Registered games should exist")
	}
	if Exists("missing") {
		t.Error("Unregistered game should not exist")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.Title() != "Zed" {
		t.Errorf("Title = %q, expected Zed", g.Title())
	}

	other, _ := Create("zz-stub")
	if other == g {
		t.Error("Create should return a fresh instance every time")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of an unknown game should fail")
	}
}

func TestListSorted(t *testing.T) {
	register("mm-list", "Middle")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "mm-list" {
			found = info.Title == "Middle"
		}
	}
	if !found {
		t.Error("List should include the registered title")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("dup-stub", "Once")

	defer func() {
		if recover() == nil {
			t.Error("Registering the same ID twice should panic")
		}
	}()
	register("dup-stub", "Twice")
}

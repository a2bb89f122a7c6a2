package registry

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{"stub_b"} })
	Register("stub_a", func() Game { return stubGame{"stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Fatal("Exists disagrees with Register")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			ia = i
		case "stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, want sorted stubs", ids)
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Stub stub_b" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create of an unknown mode should fail")
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{"stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("second Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{"stub_dup"} })
}

package registry

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct {
	id  string
	key string
}

func (g *stubGame) ID() string                             { return g.id }
func (g *stubGame) Title() string                          { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)               {}
func (g *stubGame) Step(core.InputFrame) core.StepResult   { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                    {}
func (g *stubGame) State() core.GameState                  { return core.GameState{} }

type keyedGame struct{ stubGame }

func (g *keyedGame) ScoreKey() string { return g.key }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub", func() Game { return &stubGame{id: "test_stub"} })

	if !Exists("test_stub") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("test_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub" {
			found = info.Title == "Stub test_stub"
		}
	}
	if !found {
		t.Error("List() should include the stub with its title")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of an unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
}

func TestScoreKey(t *testing.T) {
	if k := ScoreKey(&stubGame{id: "plain"}); k != "" {
		t.Errorf("ScoreKey(plain) = %q, want empty", k)
	}
	if k := ScoreKey(&keyedGame{stubGame{id: "keyed", key: "7x7"}}); k != "7x7" {
		t.Errorf("ScoreKey(keyed) = %q, want 7x7", k)
	}
}
